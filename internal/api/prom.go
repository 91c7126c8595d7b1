package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screener_predictions_total",
		Help: "Scored predictions by reported label.",
	}, []string{"label", "confidence"})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "screener_validation_failures_total",
		Help: "Requests rejected by feature validation.",
	})

	inferenceErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "screener_inference_errors_total",
		Help: "Internal scoring failures on validated input.",
	})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "screener_prediction_duration_seconds",
		Help:    "End-to-end prediction handling latency.",
		Buckets: prometheus.DefBuckets,
	})
)
