package features

import (
	"strings"
	"testing"
)

func validInput() map[string]interface{} {
	return map[string]interface{}{
		"Pregnancies":              float64(6),
		"Glucose":                  float64(148),
		"BloodPressure":            float64(72),
		"SkinThickness":            float64(35),
		"Insulin":                  float64(0),
		"BMI":                      33.6,
		"DiabetesPedigreeFunction": 0.627,
		"Age":                      float64(50),
	}
}

func TestValidateAccepts(t *testing.T) {
	v, err := NewValidator(nil)
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}

	vec, errs := v.Validate(validInput())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if vec[1] != 148 {
		t.Errorf("expected Glucose at position 1, got %f", vec[1])
	}
	if vec[7] != 50 {
		t.Errorf("expected Age at position 7, got %f", vec[7])
	}
}

func TestValidateBoundariesInclusive(t *testing.T) {
	v, _ := NewValidator(nil)

	for _, glucose := range []float64{50, 250} {
		in := validInput()
		in["Glucose"] = glucose
		if _, errs := v.Validate(in); errs != nil {
			t.Errorf("Glucose=%g should pass: %v", glucose, errs)
		}
	}
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	v, _ := NewValidator(nil)

	in := validInput()
	in["Glucose"] = float64(10)
	in["Age"] = float64(200)

	_, errs := v.Validate(in)
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 errors, got %d: %v", len(errs), errs)
	}

	joined := strings.Join(errs, " ")
	if !strings.Contains(joined, "'Glucose' must be between 50 and 250.") {
		t.Errorf("missing Glucose error in %v", errs)
	}
	if !strings.Contains(joined, "'Age' must be between 18 and 100.") {
		t.Errorf("missing Age error in %v", errs)
	}
}

func TestValidateMissingField(t *testing.T) {
	v, _ := NewValidator(nil)

	in := validInput()
	delete(in, "Insulin")

	_, errs := v.Validate(in)
	if len(errs) != 1 || errs[0] != "'Insulin' is required." {
		t.Errorf("expected required error, got %v", errs)
	}
}

func TestValidateNonNumeric(t *testing.T) {
	v, _ := NewValidator(nil)

	in := validInput()
	in["Glucose"] = "abc"

	_, errs := v.Validate(in)
	if len(errs) != 1 || errs[0] != "'Glucose' must be a number." {
		t.Errorf("expected number error, got %v", errs)
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	v, _ := NewValidator(nil)

	for _, bad := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		in := validInput()
		in["Glucose"] = bad

		_, errs := v.Validate(in)
		if len(errs) != 1 || errs[0] != "'Glucose' must be between 50 and 250." {
			t.Errorf("Glucose=%q: expected range error, got %v", bad, errs)
		}
	}
}

func TestValidateNumericString(t *testing.T) {
	v, _ := NewValidator(nil)

	in := validInput()
	in["Glucose"] = "148"

	vec, errs := v.Validate(in)
	if errs != nil {
		t.Fatalf("numeric string should parse: %v", errs)
	}
	if vec[1] != 148 {
		t.Errorf("expected 148, got %f", vec[1])
	}
}

func TestValidateOrderIndependent(t *testing.T) {
	v, _ := NewValidator(nil)

	// Same values, declared in reverse order; output positions must not move.
	in := map[string]interface{}{
		"Age":                      float64(50),
		"DiabetesPedigreeFunction": 0.627,
		"BMI":                      33.6,
		"Insulin":                  float64(0),
		"SkinThickness":            float64(35),
		"BloodPressure":            float64(72),
		"Glucose":                  float64(148),
		"Pregnancies":              float64(6),
	}
	vec, errs := v.Validate(in)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := Vector{6, 148, 72, 35, 0, 33.6, 0.627, 50}
	if vec != want {
		t.Errorf("got %v, want %v", vec, want)
	}
}

func TestNewValidatorRejectsBadRange(t *testing.T) {
	if _, err := NewValidator(map[string]Range{"Glucose": {Min: 100, Max: 100}}); err == nil {
		t.Error("expected error for min >= max")
	}
	if _, err := NewValidator(map[string]Range{"Cholesterol": {Min: 0, Max: 1}}); err == nil {
		t.Error("expected error for unknown feature")
	}
}

func TestValidateRangeOverride(t *testing.T) {
	v, err := NewValidator(map[string]Range{"Age": {Min: 21, Max: 90}})
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}

	in := validInput()
	in["Age"] = float64(19)
	_, errs := v.Validate(in)
	if len(errs) != 1 || errs[0] != "'Age' must be between 21 and 90." {
		t.Errorf("expected overridden Age bound, got %v", errs)
	}
}

func TestVectorMap(t *testing.T) {
	vec := Vector{6, 148, 72, 35, 0, 33.6, 0.627, 50}
	m := vec.Map()
	if len(m) != Count {
		t.Fatalf("expected %d entries, got %d", Count, len(m))
	}
	if m["BMI"] != 33.6 {
		t.Errorf("expected BMI 33.6, got %f", m["BMI"])
	}
}
