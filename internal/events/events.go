package events

import "time"

// PredictionScoredEvent announces one completed risk assessment to
// downstream consumers (population dashboards, alerting).
type PredictionScoredEvent struct {
	RequestID       string             `json:"request_id"`
	Input           map[string]float64 `json:"input"`
	Probability     float64            `json:"probability"`
	Diabetic        bool               `json:"diabetic"`
	Confidence      string             `json:"confidence"`
	ConfidenceScore float64            `json:"confidence_score"`
	Model           string             `json:"model"`
	Timestamp       time.Time          `json:"timestamp"`
}

// PredictionRejectedEvent announces a request that failed validation.
type PredictionRejectedEvent struct {
	RequestID string    `json:"request_id"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}
