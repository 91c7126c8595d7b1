package model

import (
	"fmt"

	"github.com/SableHealth/Screener/internal/features"
)

// Classifier is the capability the scoring service depends on: anything that
// maps a standardized length-8 vector to a positive-class probability.
type Classifier interface {
	// PredictProbability returns the probability mass assigned to the
	// diabetic class, in [0,1].
	PredictProbability(standardized []float64) (float64, error)
	Name() string
}

// Tree is one decision predictor in flattened array form: node i branches to
// ChildrenLeft[i] when x[Feature[i]] <= Threshold[i], otherwise to
// ChildrenRight[i]. Leaves carry -1 children and the positive-class
// probability in Value[i].
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

func (t *Tree) validate(idx int) error {
	n := len(t.ChildrenLeft)
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("tree %d has inconsistent node arrays", idx)
	}
	if n == 0 {
		return fmt.Errorf("tree %d is empty", idx)
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left < 0 {
			if right >= 0 {
				return fmt.Errorf("tree %d node %d is half leaf, half split", idx, i)
			}
			continue
		}
		if right < 0 {
			return fmt.Errorf("tree %d node %d is half leaf, half split", idx, i)
		}
		// Children must point strictly forward; anything else is either
		// dangling or a cycle that would never reach a leaf.
		if left <= i || right <= i || left >= n || right >= n {
			return fmt.Errorf("tree %d node %d has invalid child reference", idx, i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= features.Count {
			return fmt.Errorf("tree %d node %d splits on unknown feature %d", idx, i, t.Feature[i])
		}
	}
	return nil
}

// predict walks from the root to a leaf and returns its stored probability.
func (t *Tree) predict(x []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] >= 0 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// Forest is a bagged ensemble of decision trees. Randomness existed only at
// training time; inference is a deterministic average over fixed trees.
type Forest struct {
	ModelName string `json:"name"`
	NFeatures int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}

func (f *Forest) validate() error {
	if f.NFeatures != features.Count {
		return fmt.Errorf("model expects %d features, artifact declares %d", features.Count, f.NFeatures)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (f *Forest) Name() string { return f.ModelName }

// PredictProbability averages the leaf probabilities of every tree.
func (f *Forest) PredictProbability(standardized []float64) (float64, error) {
	if len(standardized) != features.Count {
		return 0, fmt.Errorf("expected %d standardized features, got %d", features.Count, len(standardized))
	}
	var sum float64
	for i := range f.Trees {
		sum += f.Trees[i].predict(standardized)
	}
	p := sum / float64(len(f.Trees))
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("ensemble produced probability %f outside [0,1]", p)
	}
	return p, nil
}
