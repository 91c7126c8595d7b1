// Package audit records scored predictions for clinical review. Auditing is
// optional: the prediction path works unchanged when no store is configured.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PredictionRecord is one scored request as persisted for review.
type PredictionRecord struct {
	ID              uuid.UUID          `json:"id"`
	RequestID       string             `json:"request_id,omitempty"`
	Input           map[string]float64 `json:"input"`
	Probability     float64            `json:"probability"`
	Diabetic        bool               `json:"diabetic"`
	Label           string             `json:"label"`
	Confidence      string             `json:"confidence"`
	ConfidenceScore float64            `json:"confidence_score"`
	ModelName       string             `json:"model"`
	LatencyMs       float64            `json:"latency_ms"`
	CreatedAt       time.Time          `json:"created_at"`
}

// Stats aggregates the audit trail for the admin dashboard.
type Stats struct {
	Total          int     `json:"total"`
	Diabetic       int     `json:"diabetic"`
	NotDiabetic    int     `json:"not_diabetic"`
	HighConfidence int     `json:"high_confidence"`
	AvgProbability float64 `json:"avg_probability"`
	AvgLatencyMs   float64 `json:"avg_latency_ms"`
}

type Store interface {
	RecordPrediction(ctx context.Context, rec *PredictionRecord) error
	ListRecent(ctx context.Context, limit int) ([]*PredictionRecord, error)
	GetStats(ctx context.Context) (*Stats, error)
	Close() error
}
