package ml

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogisticSeparableTwoClass(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var X [][]float64
	var y []int
	for i := 0; i < 50; i++ {
		X = append(X, []float64{-2 + rng.NormFloat64()*0.3})
		y = append(y, 0)
		X = append(X, []float64{2 + rng.NormFloat64()*0.3})
		y = append(y, 1)
	}

	m := NewLogisticRegression()
	require.NoError(t, m.Fit(X, y, rng))
	assert.Equal(t, []int{0, 1}, m.Classes)

	left, err := m.Predict([]float64{-2})
	require.NoError(t, err)
	assert.Equal(t, 0, left)

	right, err := m.Predict([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, 1, right)
}

func TestLogisticProbabilitiesSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	X := [][]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}}
	y := []int{0, 1, 0, 2, 0, 2}

	m := NewLogisticRegression()
	require.NoError(t, m.Fit(X, y, rng))

	proba, err := m.PredictProba([]float64{0.5, 0.5})
	require.NoError(t, err)
	require.Len(t, proba, 3)

	sum := 0.0
	for _, p := range proba {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestLogisticThreeClassBands(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Three ordered 1-D bands: <-1, [-1,1), >=1
	var X [][]float64
	var y []int
	for i := 0; i < 300; i++ {
		v := -3 + 6*rng.Float64()
		X = append(X, []float64{v})
		switch {
		case v < -1:
			y = append(y, 0)
		case v < 1:
			y = append(y, 1)
		default:
			y = append(y, 2)
		}
	}

	m := NewLogisticRegression()
	require.NoError(t, m.Fit(X, y, rng))

	for _, tc := range []struct {
		v    float64
		want int
	}{
		{-2, 0},
		{0, 1},
		{2, 2},
	} {
		got, err := m.Predict([]float64{tc.v})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "value %.1f", tc.v)
	}
}

func TestLogisticPredictBeforeFit(t *testing.T) {
	m := NewLogisticRegression()
	_, err := m.PredictProba([]float64{1})
	assert.Error(t, err)
}

func TestLogisticFeatureWidthMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := NewLogisticRegression()
	require.NoError(t, m.Fit([][]float64{{0, 0}, {1, 1}}, []int{0, 1}, rng))

	_, err := m.PredictProba([]float64{1})
	assert.Error(t, err)
}

func TestSoftmaxLargeLogits(t *testing.T) {
	// Max subtraction keeps huge logits from overflowing
	row := []float64{1000, 1001, 999}
	softmaxInPlace(row)

	sum := 0.0
	for _, v := range row {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, 1, argmax(row))
}
