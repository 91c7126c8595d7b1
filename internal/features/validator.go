package features

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Validator range-checks raw request fields against configured bounds.
// It is a pure function of its input and ranges; safe for concurrent use.
type Validator struct {
	ranges map[string]Range
}

// NewValidator creates a Validator. Ranges missing from the map fall back to
// the defaults; a nil map validates against DefaultRanges entirely.
func NewValidator(ranges map[string]Range) (*Validator, error) {
	merged := DefaultRanges()
	for name, r := range ranges {
		if _, ok := merged[name]; !ok {
			return nil, fmt.Errorf("unknown feature %q in range config", name)
		}
		merged[name] = r
	}
	for name, r := range merged {
		if r.Min >= r.Max {
			return nil, fmt.Errorf("invalid range for %s: min %g >= max %g", name, r.Min, r.Max)
		}
	}
	return &Validator{ranges: merged}, nil
}

// Validate checks all eight fields independently and accumulates every
// violation, so the client sees the full problem list in one round trip.
// The returned messages match the wire format existing clients parse.
func (v *Validator) Validate(raw map[string]interface{}) (Vector, []string) {
	var vec Vector
	var errs []string

	for i, name := range Names {
		value, ok := raw[name]
		if !ok || value == nil {
			errs = append(errs, fmt.Sprintf("'%s' is required.", name))
			continue
		}
		f, ok := toFloat(value)
		if !ok {
			errs = append(errs, fmt.Sprintf("'%s' must be a number.", name))
			continue
		}
		r := v.ranges[name]
		// NaN compares false against both bounds, so non-finite values must
		// be rejected explicitly.
		if math.IsNaN(f) || math.IsInf(f, 0) || f < r.Min || f > r.Max {
			errs = append(errs, fmt.Sprintf("'%s' must be between %s and %s.", name, trim(r.Min), trim(r.Max)))
			continue
		}
		vec[i] = f
	}

	if errs != nil {
		return Vector{}, errs
	}
	return vec, nil
}

// toFloat coerces the JSON value shapes clients actually send: numbers,
// numeric strings, and json.Number.
func toFloat(value interface{}) (float64, bool) {
	switch t := value.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func trim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
