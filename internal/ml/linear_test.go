package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegressionRecoversLine(t *testing.T) {
	// y = 3x + 7, exactly
	X := make([][]float64, 10)
	y := make([]float64, 10)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = 3*float64(i) + 7
	}

	var m LinearRegression
	require.NoError(t, m.Fit(X, y))

	assert.InDelta(t, 7.0, m.Intercept, 1e-4)
	require.Len(t, m.Coef, 1)
	assert.InDelta(t, 3.0, m.Coef[0], 1e-4)

	pred := m.Predict([][]float64{{10}, {20}})
	assert.InDelta(t, 37.0, pred[0], 1e-3)
	assert.InDelta(t, 67.0, pred[1], 1e-3)

	assert.InDelta(t, 1.0, m.Score(X, y), 1e-6)
}

func TestLinearRegressionTwoFeatures(t *testing.T) {
	// y = 2a - b + 1
	X := [][]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 2}, {2, 4}, {5, 3},
	}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 2*row[0] - row[1] + 1
	}

	var m LinearRegression
	require.NoError(t, m.Fit(X, y))

	assert.InDelta(t, 1.0, m.Intercept, 1e-4)
	assert.InDelta(t, 2.0, m.Coef[0], 1e-4)
	assert.InDelta(t, -1.0, m.Coef[1], 1e-4)
}

func TestLinearRegressionDuplicatedColumn(t *testing.T) {
	// Two identical columns make XᵗX singular without regularization.
	// The ridge fallback must still produce a finite fit.
	X := [][]float64{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5},
	}
	y := []float64{2, 4, 6, 8, 10}

	var m LinearRegression
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict([][]float64{{6, 6}})
	assert.InDelta(t, 12.0, pred[0], 0.1)
}

func TestLinearRegressionInputValidation(t *testing.T) {
	var m LinearRegression
	assert.Error(t, m.Fit(nil, nil))
	assert.Error(t, m.Fit([][]float64{{1}, {2}}, []float64{1}))
}
