package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/internal/ml"
	"github.com/weatherintel/backend/internal/risk"
)

// AnalysisService composes weather acquisition, the in-process analysis
// engine and risk scoring into the full per-city result, persisting a
// snapshot of each completed analysis.
type AnalysisService struct {
	weatherSvc *WeatherService
	analyzer   *ml.Analyzer
	repo       AnalysisRepository

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	weatherSvc *WeatherService,
	analyzer *ml.Analyzer,
	repo AnalysisRepository,
) *AnalysisService {
	return &AnalysisService{
		weatherSvc: weatherSvc,
		analyzer:   analyzer,
		repo:       repo,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *AnalysisService) WaitBackground() {
	s.wgBg.Wait()
}

// AnalyzeCity fetches weather for a city and runs the full analysis.
// The analysis engine and risk formulas never fail once a payload exists;
// acquisition errors (unknown city, upstream outage without mock) propagate.
func (s *AnalysisService) AnalyzeCity(ctx context.Context, city string) (domain.CityAnalysis, error) {
	payload, err := s.weatherSvc.BuildPayload(ctx, city)
	if err != nil {
		return domain.CityAnalysis{}, err
	}

	analysis := s.analyzer.RunFullAnalysis(payload)
	risks := risk.ComputeAll(payload.Current)

	result := domain.CityAnalysis{
		Weather: payload,
		ML:      analysis,
		Risks:   risks,
	}

	// Persist the snapshot asynchronously (tracked for graceful shutdown)
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveSnapshot(bgCtx, snapshotFrom(result)); err != nil {
			log.Printf("Failed to save analysis snapshot: %v", err)
		}
	}()

	return result, nil
}

// GetHistory returns persisted snapshots for a city over the last N hours
func (s *AnalysisService) GetHistory(ctx context.Context, city string, hours int) ([]domain.AnalysisSnapshot, error) {
	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)
	return s.repo.GetHistory(ctx, city, from, to)
}

// Health reports repository connectivity
func (s *AnalysisService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

// snapshotFrom flattens a completed analysis into its persisted form
func snapshotFrom(result domain.CityAnalysis) domain.AnalysisSnapshot {
	return domain.AnalysisSnapshot{
		ID:                   uuid.NewString(),
		City:                 result.Weather.City.Name,
		Country:              result.Weather.City.Country,
		Temperature:          result.Weather.Current.Temperature,
		FeelsLike:            result.Weather.Current.FeelsLike,
		Humidity:             result.Weather.Current.Humidity,
		WindSpeed:            result.Weather.Current.WindSpeed,
		Category:             result.ML.Category.Label,
		ClusterType:          result.ML.Cluster.ClusterType,
		PredictedTemp:        result.ML.PredictedTemp,
		PredictionConfidence: result.ML.PredictionConfidence,
		HeatstrokeScore:      result.Risks.Heatstroke.Score,
		ColdScore:            result.Risks.ColdExposure.Score,
		HumidityScore:        result.Risks.HumidityDiscomfort.Score,
		CreatedAt:            time.Now().UTC(),
	}
}
