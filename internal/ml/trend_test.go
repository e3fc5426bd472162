package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendShortSeriesFallback(t *testing.T) {
	trend, err := PredictTemperatureTrend([]float64{20, 21})
	require.NoError(t, err)

	// Too few points: flat forecast pinned to the first sample
	require.Len(t, trend.PredictedTemps, 12)
	for _, v := range trend.PredictedTemps {
		assert.Equal(t, 20.0, v)
	}
	assert.Equal(t, 0.0, trend.Slope)
	assert.Equal(t, 0.0, trend.Confidence)
	assert.Equal(t, "stable", trend.TrendDirection)
	assert.Equal(t, 20.0, trend.Next6hAvg)
	assert.Equal(t, 20.0, trend.Next12hAvg)
}

func TestTrendEmptySeriesFallback(t *testing.T) {
	trend, err := PredictTemperatureTrend(nil)
	require.NoError(t, err)

	require.Len(t, trend.PredictedTemps, 12)
	for _, v := range trend.PredictedTemps {
		assert.Equal(t, 20.0, v)
	}
	assert.Empty(t, trend.HistoricalTemps)
}

func TestTrendRisingSeries(t *testing.T) {
	temps := make([]float64, 24)
	for i := range temps {
		temps[i] = 10 + 0.5*float64(i)
	}

	trend, err := PredictTemperatureTrend(temps)
	require.NoError(t, err)

	assert.Equal(t, "rising", trend.TrendDirection)
	assert.InDelta(t, 0.5, trend.Slope, 1e-3)
	assert.InDelta(t, 100.0, trend.Confidence, 0.5)
	require.Len(t, trend.PredictedTemps, 12)

	// First forecast step continues the line past the last sample
	assert.InDelta(t, 22.0, trend.PredictedTemps[0], 0.1)
	assert.Greater(t, trend.Next12hAvg, trend.Next6hAvg)

	// Valid-mode smoothing shrinks the series by window-1
	assert.Len(t, trend.SmoothedTemps, 24-6+1)
}

func TestTrendFallingSeries(t *testing.T) {
	temps := make([]float64, 12)
	for i := range temps {
		temps[i] = 25 - 0.8*float64(i)
	}

	trend, err := PredictTemperatureTrend(temps)
	require.NoError(t, err)

	assert.Equal(t, "falling", trend.TrendDirection)
	assert.Less(t, trend.Slope, 0.0)
}

func TestTrendStableNoisySeries(t *testing.T) {
	// Slope well inside the +-0.15 dead zone
	temps := []float64{18.0, 18.1, 17.9, 18.0, 18.1, 18.0, 17.9, 18.0}

	trend, err := PredictTemperatureTrend(temps)
	require.NoError(t, err)

	assert.Equal(t, "stable", trend.TrendDirection)
}

func TestMovingAverage(t *testing.T) {
	out := movingAverage([]float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, out, 3)
	assert.InDelta(t, 2.0, out[0], 1e-12)
	assert.InDelta(t, 3.0, out[1], 1e-12)
	assert.InDelta(t, 4.0, out[2], 1e-12)

	// Window 1 is the identity
	same := movingAverage([]float64{1, 2, 3}, 1)
	assert.Equal(t, []float64{1, 2, 3}, same)
}
