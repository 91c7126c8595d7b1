// Package model loads the trained artifacts and exposes them behind stable
// numeric gateways. The artifacts are produced by the offline training
// pipeline; this package only deserializes and serves them.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SableHealth/Screener/internal/evaluation"
)

const (
	scalerFile  = "scaler.json"
	modelFile   = "model.json"
	metricsFile = "metrics.json"
)

// Context bundles the immutable startup state: scaler parameters, the fitted
// classifier, and the training-time evaluation report. Constructed once in
// main and passed explicitly; requests never mutate it.
type Context struct {
	Scaler     *Scaler
	Classifier Classifier
	Metrics    *evaluation.Report
}

// LoadContext reads the three artifact files from dir. Any missing or
// malformed artifact is a deployment error: the caller must refuse to serve.
func LoadContext(dir string) (*Context, error) {
	var scaler Scaler
	if err := readJSON(filepath.Join(dir, scalerFile), &scaler); err != nil {
		return nil, err
	}
	if err := scaler.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", scalerFile, err)
	}

	var forest Forest
	if err := readJSON(filepath.Join(dir, modelFile), &forest); err != nil {
		return nil, err
	}
	if err := forest.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", modelFile, err)
	}

	var report evaluation.Report
	if err := readJSON(filepath.Join(dir, metricsFile), &report); err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", metricsFile, err)
	}

	// The deployed classifier must be the metrics artifact's designated best
	// model, or /predict and /metrics would report different model names.
	if forest.ModelName != report.BestModel {
		return nil, fmt.Errorf("artifact mismatch: model %q is not best_model %q",
			forest.ModelName, report.BestModel)
	}

	return &Context{Scaler: &scaler, Classifier: &forest, Metrics: &report}, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
