package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SableHealth/Screener/internal/audit"
	"github.com/SableHealth/Screener/internal/evaluation"
	"github.com/SableHealth/Screener/internal/events"
	"github.com/SableHealth/Screener/internal/features"
	"github.com/SableHealth/Screener/internal/scoring"
)

// NewRouter builds the client-facing surface. The prediction, model-metrics,
// and health routes sit at the root so existing clients keep working.
func NewRouter(v *features.Validator, s *scoring.Service, report *evaluation.Report, a audit.Store, e events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(CORSMiddleware)
	r.Use(RateLimitMiddleware(240))

	predict := NewPredictHandler(v, s, a, e)
	metrics := NewMetricsHandler(report, s.ModelName())
	admin := NewAdminHandler(a)

	r.Post("/predict", predict.Predict)
	r.Get("/metrics", metrics.Metrics)
	r.Get("/health", metrics.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AdminAuthMiddleware(adminToken))
		r.Get("/stats", admin.Stats)
		r.Get("/predictions", admin.Predictions)
	})

	return r
}

// NewMetricsRouter serves the operational (Prometheus) surface on its own
// port, separate from the model-metrics endpoint clients consume.
func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
