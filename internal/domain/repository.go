package domain

import (
	"context"
	"time"
)

// AnalysisSnapshot is the persisted record of one completed analysis
type AnalysisSnapshot struct {
	ID                   string    `json:"id"`
	City                 string    `json:"city"`
	Country              string    `json:"country"`
	Temperature          float64   `json:"temperature"`
	FeelsLike            float64   `json:"feels_like"`
	Humidity             float64   `json:"humidity"`
	WindSpeed            float64   `json:"wind_speed"`
	Category             string    `json:"category"`
	ClusterType          string    `json:"cluster_type"`
	PredictedTemp        float64   `json:"predicted_temp"`
	PredictionConfidence float64   `json:"prediction_confidence"`
	HeatstrokeScore      int       `json:"heatstroke_score"`
	ColdScore            int       `json:"cold_score"`
	HumidityScore        int       `json:"humidity_score"`
	CreatedAt            time.Time `json:"created_at"`
}

// AnalysisRepository defines the interface for analysis persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type AnalysisRepository interface {
	// SaveSnapshot persists a completed analysis snapshot
	SaveSnapshot(ctx context.Context, snap AnalysisSnapshot) error

	// GetHistory retrieves persisted snapshots for a city within a time range
	GetHistory(ctx context.Context, city string, from, to time.Time) ([]AnalysisSnapshot, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
