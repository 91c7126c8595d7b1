package api

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/SableHealth/Screener/internal/audit"
	"github.com/SableHealth/Screener/internal/events"
	"github.com/SableHealth/Screener/internal/features"
	"github.com/SableHealth/Screener/internal/scoring"
)

type PredictHandler struct {
	validator *features.Validator
	service   *scoring.Service
	audit     audit.Store
	events    events.Client
}

func NewPredictHandler(v *features.Validator, s *scoring.Service, a audit.Store, e events.Client) *PredictHandler {
	return &PredictHandler{validator: v, service: s, audit: a, events: e}
}

// PredictionResponse is the wire contract existing clients render from.
type PredictionResponse struct {
	Prediction      string             `json:"prediction"`
	Diabetic        bool               `json:"diabetic"`
	Probability     float64            `json:"probability"`
	Confidence      string             `json:"confidence"`
	ConfidenceScore float64            `json:"confidence_score"`
	Model           string             `json:"model"`
	InputFeatures   map[string]float64 `json:"input_features"`
}

func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { predictionDuration.Observe(time.Since(start).Seconds()) }()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Request body must be JSON."})
		return
	}

	requestID := chiMiddleware.GetReqID(r.Context())

	vector, errs := h.validator.Validate(body)
	if errs != nil {
		validationFailures.Inc()
		if h.events != nil {
			_ = h.events.Publish(events.SubjectPredictionRejected, events.PredictionRejectedEvent{
				RequestID: requestID,
				Errors:    errs,
				Timestamp: time.Now().UTC(),
			})
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string][]string{"errors": errs})
		return
	}

	result, err := h.service.Score(vector)
	if err != nil {
		inferenceErrors.Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	predictionsTotal.WithLabelValues(result.Label, result.Confidence).Inc()

	if h.audit != nil {
		_ = h.audit.RecordPrediction(r.Context(), &audit.PredictionRecord{
			RequestID:       requestID,
			Input:           result.Input.Map(),
			Probability:     result.Probability,
			Diabetic:        result.Diabetic,
			Label:           result.Label,
			Confidence:      result.Confidence,
			ConfidenceScore: result.ConfidenceScore,
			ModelName:       result.ModelName,
			LatencyMs:       float64(time.Since(start).Microseconds()) / 1000,
		})
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectPredictionScored, events.PredictionScoredEvent{
			RequestID:       requestID,
			Input:           result.Input.Map(),
			Probability:     result.Probability,
			Diabetic:        result.Diabetic,
			Confidence:      result.Confidence,
			ConfidenceScore: result.ConfidenceScore,
			Model:           result.ModelName,
			Timestamp:       time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, PredictionResponse{
		Prediction:      result.Label,
		Diabetic:        result.Diabetic,
		Probability:     round4(result.Probability),
		Confidence:      result.Confidence,
		ConfidenceScore: round4(result.ConfidenceScore),
		Model:           result.ModelName,
		InputFeatures:   result.Input.Map(),
	})
}

// round4 matches the 4-decimal rounding clients have always received.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
