// Package scoring turns a raw classifier probability into the clinical
// response contract: decision, label, and confidence band.
package scoring

const (
	// DecisionThreshold is the probability at or above which a patient is
	// reported diabetic. A tie at exactly 0.5 resolves to diabetic.
	DecisionThreshold = 0.5

	// Band boundaries over confidence_score, matching the client's risk
	// gauge colors. Closed below: exactly 0.65 is Moderate, exactly 0.4
	// is Low.
	highBand     = 0.65
	moderateBand = 0.4
)

const (
	LabelDiabetic    = "Diabetic"
	LabelNotDiabetic = "Not Diabetic"

	ConfidenceHigh     = "High"
	ConfidenceModerate = "Moderate"
	ConfidenceLow      = "Low"
)

// Assessment is the clinical reading of one probability.
type Assessment struct {
	Diabetic        bool
	Label           string
	Confidence      string
	ConfidenceScore float64
}

// Classify maps a diabetic-class probability to an Assessment. The
// confidence score is the probability mass assigned to the predicted class,
// so it sits in [0.5, 1.0] except at the exact tie.
func Classify(probability float64) Assessment {
	a := Assessment{Diabetic: probability >= DecisionThreshold}

	if a.Diabetic {
		a.Label = LabelDiabetic
		a.ConfidenceScore = probability
	} else {
		a.Label = LabelNotDiabetic
		a.ConfidenceScore = 1 - probability
	}

	a.Confidence = Band(a.ConfidenceScore)
	return a
}

// Band buckets a confidence score into the gauge's three color bands.
func Band(score float64) string {
	switch {
	case score > highBand:
		return ConfidenceHigh
	case score > moderateBand:
		return ConfidenceModerate
	default:
		return ConfidenceLow
	}
}
