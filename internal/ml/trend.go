package ml

import (
	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/pkg/utils"
)

const (
	trendMinPoints     = 4
	trendForecastSteps = 12
	trendSmoothWindow  = 6
	trendSlopeFlat     = 0.15
)

// PredictTemperatureTrend fits a linear trend over the hourly temperature
// series and forecasts the next 12 steps. Fewer than 4 points is not enough
// to fit a line, so a degenerate flat forecast pinned to the first sample is
// returned instead.
func PredictTemperatureTrend(hourlyTemps []float64) (domain.TrendForecast, error) {
	if len(hourlyTemps) < trendMinPoints {
		fallback := 20.0
		if len(hourlyTemps) > 0 {
			fallback = hourlyTemps[0]
		}
		predicted := make([]float64, trendForecastSteps)
		for i := range predicted {
			predicted[i] = fallback
		}
		return domain.TrendForecast{
			HistoricalTemps: append([]float64(nil), hourlyTemps...),
			SmoothedTemps:   append([]float64(nil), hourlyTemps...),
			PredictedTemps:  predicted,
			Slope:           0.0,
			TrendDirection:  "stable",
			Confidence:      0.0,
			Next6hAvg:       fallback,
			Next12hAvg:      fallback,
		}, nil
	}

	n := len(hourlyTemps)
	X := make([][]float64, n)
	for i := range X {
		X[i] = []float64{float64(i)}
	}

	var model LinearRegression
	if err := model.Fit(X, hourlyTemps); err != nil {
		return domain.TrendForecast{}, err
	}

	confidence := utils.Clamp(model.Score(X, hourlyTemps), 0.0, 1.0)

	futureX := make([][]float64, trendForecastSteps)
	for i := range futureX {
		futureX[i] = []float64{float64(n + i)}
	}
	future := model.Predict(futureX)

	predicted := make([]float64, len(future))
	for i, v := range future {
		predicted[i] = utils.RoundTo(v, 1)
	}

	slope := model.Coef[0]
	direction := "stable"
	switch {
	case slope > trendSlopeFlat:
		direction = "rising"
	case slope < -trendSlopeFlat:
		direction = "falling"
	}

	return domain.TrendForecast{
		HistoricalTemps: append([]float64(nil), hourlyTemps...),
		SmoothedTemps:   movingAverage(hourlyTemps, min(trendSmoothWindow, n)),
		PredictedTemps:  predicted,
		Slope:           utils.RoundTo(slope, 3),
		TrendDirection:  direction,
		Confidence:      utils.RoundTo(confidence*100, 1),
		Next6hAvg:       utils.RoundTo(utils.Mean(future[:6]), 1),
		Next12hAvg:      utils.RoundTo(utils.Mean(future), 1),
	}, nil
}

// movingAverage computes a symmetric moving average in "valid" mode: the
// output shrinks by window-1. Used for display smoothing only.
func movingAverage(values []float64, window int) []float64 {
	if window <= 1 {
		return append([]float64(nil), values...)
	}
	out := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
