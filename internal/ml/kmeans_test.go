package ml

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobData(rng *rand.Rand, centers [][]float64, perBlob int, scale float64) [][]float64 {
	var X [][]float64
	for _, c := range centers {
		for i := 0; i < perBlob; i++ {
			row := make([]float64, len(c))
			for j := range row {
				row[j] = c[j] + rng.NormFloat64()*scale
			}
			X = append(X, row)
		}
	}
	return X
}

func TestKMeansRecoversSeparatedBlobs(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	centers := [][]float64{{0, 0}, {10, 10}, {-10, 10}}
	X := blobData(rng, centers, 100, 0.5)

	m := NewKMeans(3, 5)
	require.NoError(t, m.Fit(X, rng))

	require.Len(t, m.Centers, 3)
	require.Len(t, m.Labels, len(X))
	assert.False(t, math.IsInf(m.Inertia, 1))

	// Each true center maps to a distinct cluster
	seen := make(map[int]bool)
	for _, c := range centers {
		k, err := m.Predict(c)
		require.NoError(t, err)
		seen[k] = true

		// Fitted center sits close to the true one
		assert.Less(t, m.DistanceTo(c, k), 1.0)
	}
	assert.Len(t, seen, 3)
}

func TestKMeansPredictIsStable(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	X := blobData(rng, [][]float64{{0, 0}, {8, 8}}, 50, 0.3)

	m := NewKMeans(2, 3)
	require.NoError(t, m.Fit(X, rng))

	first, err := m.Predict([]float64{0.1, -0.2})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := m.Predict([]float64{0.1, -0.2})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestKMeansErrors(t *testing.T) {
	m := NewKMeans(3, 1)

	rng := rand.New(rand.NewSource(1))
	assert.Error(t, m.Fit(nil, rng))
	assert.Error(t, m.Fit([][]float64{{1}, {2}}, rng), "fewer points than clusters")

	_, err := m.Predict([]float64{1})
	assert.Error(t, err, "predict before fit")
}

func TestKMeansIdenticalPoints(t *testing.T) {
	// All points coincide; seeding must not divide by a zero total
	X := [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	rng := rand.New(rand.NewSource(4))

	m := NewKMeans(2, 2)
	require.NoError(t, m.Fit(X, rng))
	assert.Equal(t, 0.0, m.Inertia)
}
