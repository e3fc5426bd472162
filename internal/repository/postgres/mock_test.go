package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherintel/backend/internal/domain"
)

func TestMockRepositorySaveAndHistory(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	for i, city := range []string{"Lisbon", "lisbon", "Porto"} {
		require.NoError(t, repo.SaveSnapshot(ctx, domain.AnalysisSnapshot{
			ID:        string(rune('a' + i)),
			City:      city,
			CreatedAt: now.Add(time.Duration(i-3) * time.Hour),
		}))
	}

	// City match is case-insensitive, latest write first
	got, err := repo.GetHistory(ctx, "LISBON", now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestMockRepositoryTimeWindow(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.SaveSnapshot(ctx, domain.AnalysisSnapshot{
		ID: "old", City: "Lisbon", CreatedAt: now.Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.SaveSnapshot(ctx, domain.AnalysisSnapshot{
		ID: "recent", City: "Lisbon", CreatedAt: now.Add(-1 * time.Hour),
	}))

	got, err := repo.GetHistory(ctx, "Lisbon", now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "recent", got[0].ID)
}

func TestMockRepositoryHealth(t *testing.T) {
	repo := NewMockRepository()
	assert.NoError(t, repo.Health(context.Background()))
}
