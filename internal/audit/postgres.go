package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const recordColumns = `id, request_id, input, probability, diabetic, label,
	confidence, confidence_score, model, latency_ms, created_at`

func (s *PostgresStore) RecordPrediction(ctx context.Context, rec *PredictionRecord) error {
	inputJSON, _ := json.Marshal(rec.Input)

	return s.pool.QueryRow(ctx, `
		INSERT INTO screener_predictions (request_id, input, probability, diabetic,
			label, confidence, confidence_score, model, latency_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		rec.RequestID, inputJSON, rec.Probability, rec.Diabetic,
		rec.Label, rec.Confidence, rec.ConfidenceScore, rec.ModelName, rec.LatencyMs,
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]*PredictionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+recordColumns+`
		FROM screener_predictions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN diabetic THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN NOT diabetic THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN confidence = 'High' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(probability), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM screener_predictions`,
	).Scan(&stats.Total, &stats.Diabetic, &stats.NotDiabetic, &stats.HighConfidence,
		&stats.AvgProbability, &stats.AvgLatencyMs)
	return stats, err
}

func scanRecords(rows pgx.Rows) ([]*PredictionRecord, error) {
	var records []*PredictionRecord
	for rows.Next() {
		rec := &PredictionRecord{}
		var inputJSON []byte
		if err := rows.Scan(
			&rec.ID, &rec.RequestID, &inputJSON, &rec.Probability, &rec.Diabetic,
			&rec.Label, &rec.Confidence, &rec.ConfidenceScore, &rec.ModelName,
			&rec.LatencyMs, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if inputJSON != nil {
			_ = json.Unmarshal(inputJSON, &rec.Input)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
