package model

import (
	"fmt"

	"github.com/SableHealth/Screener/internal/features"
)

// Scaler holds the fitted standardization parameters. Immutable after load;
// safe for unlimited concurrent readers.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) validate() error {
	if len(s.Mean) != features.Count || len(s.Scale) != features.Count {
		return fmt.Errorf("scaler expects %d parameters, got mean=%d scale=%d",
			features.Count, len(s.Mean), len(s.Scale))
	}
	for i, sc := range s.Scale {
		if sc == 0 {
			return fmt.Errorf("scaler has zero scale at position %d (%s)", i, features.Names[i])
		}
	}
	return nil
}

// Transform standardizes a validated feature vector position by position.
// Input validity is guaranteed upstream, so there is no failure mode here.
func (s *Scaler) Transform(v features.Vector) []float64 {
	out := make([]float64, features.Count)
	for i := range v {
		out[i] = (v[i] - s.Mean[i]) / s.Scale[i]
	}
	return out
}
