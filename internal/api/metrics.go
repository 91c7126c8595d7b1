package api

import (
	"net/http"

	"github.com/SableHealth/Screener/internal/evaluation"
)

type MetricsHandler struct {
	report    *evaluation.Report
	modelName string
}

func NewMetricsHandler(report *evaluation.Report, modelName string) *MetricsHandler {
	return &MetricsHandler{report: report, modelName: modelName}
}

// MetricsResponse carries both candidates' held-out evaluation results for
// the comparison view.
type MetricsResponse struct {
	AllMetrics map[string]evaluation.ModelMetrics `json:"all_metrics"`
	BestModel  string                             `json:"best_model"`
}

func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MetricsResponse{
		AllMetrics: h.report.Models,
		BestModel:  h.report.BestModel,
	})
}

func (h *MetricsHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"model":  h.modelName,
	})
}
