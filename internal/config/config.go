package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/SableHealth/Screener/internal/features"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Artifacts  ArtifactsConfig  `yaml:"artifacts"`
	Database   DatabaseConfig   `yaml:"database"`
	Events     EventsConfig     `yaml:"events"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

// ArtifactsConfig points at the directory holding the trained artifact trio
// (scaler.json, model.json, metrics.json).
type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

// DatabaseConfig configures the optional prediction audit trail. An empty
// URL runs the service without auditing.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// EventsConfig configures the optional NATS event feed.
type EventsConfig struct {
	URL string `yaml:"url"`
}

// ValidationConfig optionally overrides per-field acceptance ranges.
type ValidationConfig struct {
	Ranges map[string]features.Range `yaml:"ranges"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        5000,
			MetricsPort: 5001,
		},
		Artifacts: ArtifactsConfig{
			Dir: "model/artifacts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SCREENER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SCREENER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SCREENER_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("SCREENER_ARTIFACTS_DIR"); v != "" {
		cfg.Artifacts.Dir = v
	}
	if v := os.Getenv("SCREENER_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("SCREENER_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("SCREENER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
