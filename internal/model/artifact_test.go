package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/SableHealth/Screener/internal/evaluation"
)

func fixtureReport() *evaluation.Report {
	return &evaluation.Report{
		BestModel: "Random Forest",
		Models: map[string]evaluation.ModelMetrics{
			"Random Forest": {
				Accuracy: 0.7142857142857143, Precision: 0.6666666666666666, Recall: 0.5, F1: 0.5714285714285715,
				ConfusionMatrix: [2][2]int{{11, 2}, {4, 4}}, // hypothetical holdout of 21
			},
			"Logistic Regression": {
				Accuracy: 0.7142857142857143, Precision: 0.625, Recall: 0.625, F1: 0.625,
				ConfusionMatrix: [2][2]int{{10, 3}, {3, 5}},
			},
		},
	}
}

func writeArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, v := range map[string]interface{}{
		scalerFile:  identityScaler(),
		modelFile:   fixtureForest(),
		metricsFile: fixtureReport(),
	} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadContext(t *testing.T) {
	dir := writeArtifacts(t)

	ctx, err := LoadContext(dir)
	if err != nil {
		t.Fatalf("LoadContext: %v", err)
	}
	if ctx.Classifier.Name() != "Random Forest" {
		t.Errorf("expected model name 'Random Forest', got %q", ctx.Classifier.Name())
	}
	if ctx.Metrics.BestModel != "Random Forest" {
		t.Errorf("expected best model 'Random Forest', got %q", ctx.Metrics.BestModel)
	}
	if len(ctx.Metrics.Models) != 2 {
		t.Errorf("expected 2 model entries, got %d", len(ctx.Metrics.Models))
	}
}

func TestLoadContextMissingFile(t *testing.T) {
	dir := writeArtifacts(t)
	os.Remove(filepath.Join(dir, modelFile))

	if _, err := LoadContext(dir); err == nil {
		t.Error("expected error for missing model artifact")
	}
}

func TestLoadContextMalformed(t *testing.T) {
	dir := writeArtifacts(t)
	os.WriteFile(filepath.Join(dir, scalerFile), []byte("{not json"), 0o644)

	if _, err := LoadContext(dir); err == nil {
		t.Error("expected error for malformed scaler artifact")
	}
}

func TestLoadContextBadScalerLength(t *testing.T) {
	dir := writeArtifacts(t)
	bad, _ := json.Marshal(&Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}})
	os.WriteFile(filepath.Join(dir, scalerFile), bad, 0o644)

	if _, err := LoadContext(dir); err == nil {
		t.Error("expected error for wrong scaler parameter count")
	}
}

func TestLoadContextModelNameMismatch(t *testing.T) {
	dir := writeArtifacts(t)
	forest := fixtureForest()
	forest.ModelName = "Gradient Boosting"
	data, _ := json.Marshal(forest)
	os.WriteFile(filepath.Join(dir, modelFile), data, 0o644)

	if _, err := LoadContext(dir); err == nil {
		t.Error("expected error when model name disagrees with best_model")
	}
}

func TestLoadContextBadMetrics(t *testing.T) {
	dir := writeArtifacts(t)
	report := fixtureReport()
	delete(report.Models, "Logistic Regression")
	data, _ := json.Marshal(report)
	os.WriteFile(filepath.Join(dir, metricsFile), data, 0o644)

	if _, err := LoadContext(dir); err == nil {
		t.Error("expected error for single-model metrics artifact")
	}
}
