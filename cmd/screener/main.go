package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SableHealth/Screener/internal/api"
	"github.com/SableHealth/Screener/internal/audit"
	"github.com/SableHealth/Screener/internal/config"
	"github.com/SableHealth/Screener/internal/events"
	"github.com/SableHealth/Screener/internal/features"
	"github.com/SableHealth/Screener/internal/model"
	"github.com/SableHealth/Screener/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Trained artifacts. Missing or malformed artifacts are fatal: the
	// service must not score with partial or default parameters.
	mc, err := model.LoadContext(cfg.Artifacts.Dir)
	if err != nil {
		logger.Error("failed to load model artifacts", "error", err, "dir", cfg.Artifacts.Dir)
		os.Exit(1)
	}
	logger.Info("model loaded", "model", mc.Classifier.Name(), "best_model", mc.Metrics.BestModel)
	logger.Info("features", "names", features.Names)

	validator, err := features.NewValidator(cfg.Validation.Ranges)
	if err != nil {
		logger.Error("invalid validation ranges", "error", err)
		os.Exit(1)
	}

	// Audit store (optional)
	var auditStore audit.Store
	if cfg.Database.URL != "" {
		db, err := audit.NewPostgresStore(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		auditStore = db
		defer db.Close()
		logger.Info("prediction auditing enabled")
	}

	// Event feed (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event feed, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event feed")
		}
	}

	svc := scoring.NewService(mc.Scaler, mc.Classifier, logger)

	// API server
	router := api.NewRouter(validator, svc, mc.Metrics, auditStore, eventsClient, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
