package postgres

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/weatherintel/backend/internal/domain"
)

// MockRepository implements domain.AnalysisRepository for testing/demo mode.
// Snapshots are held in memory so the history endpoint still works without
// a database.
type MockRepository struct {
	mu        sync.RWMutex
	snapshots []domain.AnalysisSnapshot
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveSnapshot stores the snapshot in memory
func (r *MockRepository) SaveSnapshot(ctx context.Context, snap domain.AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snap)
	return nil
}

// GetHistory returns in-memory snapshots matching the city and range
func (r *MockRepository) GetHistory(ctx context.Context, city string, from, to time.Time) ([]domain.AnalysisSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []domain.AnalysisSnapshot
	for i := len(r.snapshots) - 1; i >= 0 && len(results) < 100; i-- {
		s := r.snapshots[i]
		if !strings.EqualFold(s.City, city) {
			continue
		}
		if s.CreatedAt.Before(from) || s.CreatedAt.After(to) {
			continue
		}
		results = append(results, s)
	}
	return results, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
