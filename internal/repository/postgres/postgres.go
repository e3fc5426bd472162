package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weatherintel/backend/internal/domain"
)

// PostgresRepository implements domain.AnalysisRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveSnapshot persists a completed analysis snapshot
func (r *PostgresRepository) SaveSnapshot(ctx context.Context, snap domain.AnalysisSnapshot) error {
	query := `
		INSERT INTO analysis_snapshots (
			id, city, country, temperature, feels_like, humidity, wind_speed,
			category, cluster_type, predicted_temp, prediction_confidence,
			heatstroke_score, cold_score, humidity_score, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		snap.ID, snap.City, snap.Country,
		snap.Temperature, snap.FeelsLike, snap.Humidity, snap.WindSpeed,
		snap.Category, snap.ClusterType, snap.PredictedTemp, snap.PredictionConfidence,
		snap.HeatstrokeScore, snap.ColdScore, snap.HumidityScore, snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save analysis snapshot: %w", err)
	}

	return nil
}

// GetHistory retrieves analysis snapshots for a city within a time range
func (r *PostgresRepository) GetHistory(ctx context.Context, city string, from, to time.Time) ([]domain.AnalysisSnapshot, error) {
	query := `
		SELECT id, city, country, temperature, feels_like, humidity, wind_speed,
			   category, cluster_type, predicted_temp, prediction_confidence,
			   heatstroke_score, cold_score, humidity_score, created_at
		FROM analysis_snapshots
		WHERE LOWER(city) = LOWER($1) AND created_at BETWEEN $2 AND $3
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query, city, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query analysis snapshots: %w", err)
	}
	defer rows.Close()

	var results []domain.AnalysisSnapshot
	for rows.Next() {
		var s domain.AnalysisSnapshot
		err := rows.Scan(
			&s.ID, &s.City, &s.Country,
			&s.Temperature, &s.FeelsLike, &s.Humidity, &s.WindSpeed,
			&s.Category, &s.ClusterType, &s.PredictedTemp, &s.PredictionConfidence,
			&s.HeatstrokeScore, &s.ColdScore, &s.HumidityScore, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan snapshot row: %w", err)
		}
		results = append(results, s)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
