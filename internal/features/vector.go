package features

// Count is the number of attributes in a patient feature vector. The scaler
// and classifier artifacts were fit against this exact positional layout.
const Count = 8

// Names lists the attributes in canonical order. Positions matter: the
// trained artifacts index by position, not by name.
var Names = [Count]string{
	"Pregnancies",
	"Glucose",
	"BloodPressure",
	"SkinThickness",
	"Insulin",
	"BMI",
	"DiabetesPedigreeFunction",
	"Age",
}

// Vector is one patient's measurements in canonical attribute order.
type Vector [Count]float64

// Values returns the vector as a slice for positional consumers.
func (v Vector) Values() []float64 {
	out := make([]float64, Count)
	copy(out, v[:])
	return out
}

// Map returns the vector keyed by attribute name, for echoing back to clients.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, Count)
	for i, name := range Names {
		m[name] = v[i]
	}
	return m
}

// Range is the inclusive acceptance bound for one attribute.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// DefaultRanges returns the authoritative acceptance bounds, aligned with the
// physiological guidance shown by the client UI.
func DefaultRanges() map[string]Range {
	return map[string]Range{
		"Pregnancies":              {Min: 0, Max: 20},
		"Glucose":                  {Min: 50, Max: 250},
		"BloodPressure":            {Min: 30, Max: 150},
		"SkinThickness":            {Min: 0, Max: 100},
		"Insulin":                  {Min: 0, Max: 900},
		"BMI":                      {Min: 10, Max: 70},
		"DiabetesPedigreeFunction": {Min: 0.05, Max: 2.5},
		"Age":                      {Min: 18, Max: 100},
	}
}
