package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/internal/ml"
)

type recordingRepo struct {
	mu    sync.Mutex
	saved []domain.AnalysisSnapshot
}

func (r *recordingRepo) SaveSnapshot(ctx context.Context, snap domain.AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, snap)
	return nil
}

func (r *recordingRepo) GetHistory(ctx context.Context, city string, from, to time.Time) ([]domain.AnalysisSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AnalysisSnapshot(nil), r.saved...), nil
}

func (r *recordingRepo) Health(ctx context.Context) error { return nil }

func newAnalysisFixture(t *testing.T) (*AnalysisService, *recordingRepo, func()) {
	t.Helper()
	weatherSvc, cleanup := newTestService(serveJSON(geocodingJSON), serveJSON(forecastJSON))
	repo := &recordingRepo{}
	svc := NewAnalysisService(weatherSvc, ml.NewAnalyzer(ml.NewModelRegistry()), repo)
	return svc, repo, cleanup
}

func TestAnalyzeCityProducesFullResult(t *testing.T) {
	svc, repo, cleanup := newAnalysisFixture(t)
	defer cleanup()

	result, err := svc.AnalyzeCity(context.Background(), "Lisbon")
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", result.Weather.City.Name)
	assert.NotEmpty(t, result.ML.Clothing.Primary)
	assert.NotEmpty(t, result.ML.Cluster.ClusterType)
	assert.NotNil(t, result.ML.Trend)
	assert.NotEmpty(t, result.Risks.Heatstroke.Level)

	// The snapshot save runs in the background; wait for it
	svc.WaitBackground()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.saved, 1)
	snap := repo.saved[0]
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "Lisbon", snap.City)
	assert.Equal(t, result.Weather.Current.Temperature, snap.Temperature)
	assert.Equal(t, result.ML.PredictedTemp, snap.PredictedTemp)
	assert.False(t, snap.CreatedAt.IsZero())
}

func TestAnalyzeCityUnknownCityPropagates(t *testing.T) {
	weatherSvc, cleanup := newTestService(serveJSON(`{"results": []}`), serveJSON(forecastJSON))
	defer cleanup()

	svc := NewAnalysisService(weatherSvc, ml.NewAnalyzer(ml.NewModelRegistry()), &recordingRepo{})

	_, err := svc.AnalyzeCity(context.Background(), "Nowhereville")
	assert.ErrorIs(t, err, ErrCityNotFound)

	svc.WaitBackground()
}

func TestGetHistoryDelegatesToRepository(t *testing.T) {
	svc, repo, cleanup := newAnalysisFixture(t)
	defer cleanup()

	repo.saved = append(repo.saved, domain.AnalysisSnapshot{ID: "abc", City: "Lisbon"})

	history, err := svc.GetHistory(context.Background(), "Lisbon", 24)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "abc", history[0].ID)
}
