package scoring

import (
	"fmt"
	"log/slog"

	"github.com/SableHealth/Screener/internal/features"
	"github.com/SableHealth/Screener/internal/model"
)

// Result is the complete outcome of scoring one patient, created once per
// request and never persisted by the prediction path.
type Result struct {
	Probability     float64
	Diabetic        bool
	Label           string
	Confidence      string
	ConfidenceScore float64
	ModelName       string
	Input           features.Vector
}

// Service runs a validated feature vector through the scale → score →
// classify pipeline. All shared state is immutable, so a single Service
// serves any number of concurrent requests.
type Service struct {
	scaler     *model.Scaler
	classifier model.Classifier
	logger     *slog.Logger
}

func NewService(scaler *model.Scaler, classifier model.Classifier, logger *slog.Logger) *Service {
	return &Service{scaler: scaler, classifier: classifier, logger: logger}
}

// ModelName reports the deployed classifier's name.
func (s *Service) ModelName() string {
	return s.classifier.Name()
}

// Score produces a Result for an already-validated vector. An error here is
// internal (a bug or a broken artifact), never client-caused; the caller must
// surface it opaquely.
func (s *Service) Score(v features.Vector) (Result, error) {
	standardized := s.scaler.Transform(v)

	p, err := s.classifier.PredictProbability(standardized)
	if err != nil {
		s.logger.Error("inference failed", "error", err, "input", v.Map())
		return Result{}, fmt.Errorf("predict: %w", err)
	}

	a := Classify(p)
	return Result{
		Probability:     p,
		Diabetic:        a.Diabetic,
		Label:           a.Label,
		Confidence:      a.Confidence,
		ConfidenceScore: a.ConfidenceScore,
		ModelName:       s.classifier.Name(),
		Input:           v,
	}, nil
}
