package evaluation

import (
	"fmt"
	"math"
)

// ModelMetrics is one model's held-out evaluation result, computed once at
// training time and never recomputed by the service.
type ModelMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	// ConfusionMatrix is [[TN, FP], [FN, TP]].
	ConfusionMatrix [2][2]int `json:"confusion_matrix"`
}

// Total is the held-out test set size the matrix was counted over.
func (m ModelMetrics) Total() int {
	return m.ConfusionMatrix[0][0] + m.ConfusionMatrix[0][1] +
		m.ConfusionMatrix[1][0] + m.ConfusionMatrix[1][1]
}

const tolerance = 1e-6

// Validate checks the internal consistency of a stored metrics entry: every
// rate in [0,1] and accuracy agreeing with the confusion matrix.
func (m ModelMetrics) Validate() error {
	for name, v := range map[string]float64{
		"accuracy": m.Accuracy, "precision": m.Precision, "recall": m.Recall, "f1": m.F1,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %f outside [0,1]", name, v)
		}
	}
	total := m.Total()
	if total == 0 {
		return fmt.Errorf("confusion matrix is empty")
	}
	tn, tp := m.ConfusionMatrix[0][0], m.ConfusionMatrix[1][1]
	want := float64(tn+tp) / float64(total)
	if math.Abs(m.Accuracy-want) > tolerance {
		return fmt.Errorf("accuracy %f disagrees with confusion matrix (%f)", m.Accuracy, want)
	}
	return nil
}

// Precision reports TP/(TP+FP), or 0 when the denominator is empty.
func Precision(tp, fp int) float64 {
	if tp+fp == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fp)
}

// Recall reports TP/(TP+FN), or 0 when the denominator is empty.
func Recall(tp, fn int) float64 {
	if tp+fn == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fn)
}

// F1 is the harmonic mean of precision and recall, 0 when both are 0.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// Report holds the evaluation results for the two candidate models plus the
// designated deployed model. Loaded once at startup, read-only afterwards.
type Report struct {
	BestModel string                  `json:"best_model"`
	Models    map[string]ModelMetrics `json:"models"`
}

// Validate enforces the artifact contract: exactly two models, a best-model
// designation that names one of them, and per-model consistency.
func (r *Report) Validate() error {
	if len(r.Models) != 2 {
		return fmt.Errorf("expected exactly 2 model entries, got %d", len(r.Models))
	}
	if r.BestModel == "" {
		return fmt.Errorf("best_model is not set")
	}
	if _, ok := r.Models[r.BestModel]; !ok {
		return fmt.Errorf("best_model %q has no metrics entry", r.BestModel)
	}
	for name, m := range r.Models {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("model %q: %w", name, err)
		}
	}
	return nil
}
