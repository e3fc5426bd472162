package ml

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFitted is returned when Transform is called before Fit. This is a
// programming error in the caller, never a data problem, so it fails loudly.
var ErrNotFitted = errors.New("ml: scaler used before Fit")

// StandardScaler centers each column to zero mean and scales it to unit
// variance using statistics captured at Fit time. A column with zero
// variance keeps a standard deviation of 1.0 so constant features map to
// zero instead of NaN.
type StandardScaler struct {
	mean   []float64
	std    []float64
	fitted bool
}

// Fit computes per-column mean and standard deviation over all rows of X
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 || len(X[0]) == 0 {
		return errors.New("ml: scaler fit on empty matrix")
	}
	rows, cols := len(X), len(X[0])

	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)

	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += X[i][j]
		}
		s.mean[j] = sum / float64(rows)
	}
	for j := 0; j < cols; j++ {
		varSum := 0.0
		for i := 0; i < rows; i++ {
			d := X[i][j] - s.mean[j]
			varSum += d * d
		}
		s.std[j] = math.Sqrt(varSum / float64(rows))
		if s.std[j] == 0 {
			s.std[j] = 1.0
		}
	}
	s.fitted = true
	return nil
}

// Transform returns (X - mean) / std using the fitted statistics
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(s.mean) {
			return nil, fmt.Errorf("ml: scaler fitted on %d features, got %d", len(s.mean), len(row))
		}
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = (v - s.mean[j]) / s.std[j]
		}
		out[i] = r
	}
	return out, nil
}

// TransformRow standardizes a single feature vector
func (s *StandardScaler) TransformRow(row []float64) ([]float64, error) {
	out, err := s.Transform([][]float64{row})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// FitTransform fits the scaler on X and returns the standardized matrix
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
