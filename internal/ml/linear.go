package ml

import (
	"errors"
	"fmt"
)

// Ridge terms used by the normal-equation solve. The tiny default keeps the
// system well conditioned without visibly biasing the fit; the fallback term
// is strong enough to regularize a genuinely singular system.
const (
	ridgeLambda         = 1e-8
	ridgeLambdaFallback = 1e-4
)

// LinearRegression fits ordinary least squares via the ridge-regularized
// normal equation (XᵗX + λI) w = Xᵗy. Weight 0 is the intercept.
type LinearRegression struct {
	Intercept float64
	Coef      []float64

	w []float64
}

// Fit solves the normal equation for the weight vector. When the regularized
// system is still singular the solve is retried with a stronger ridge term.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("ml: linear fit on empty matrix")
	}
	if len(X) != len(y) {
		return fmt.Errorf("ml: linear fit rows (%d) != targets (%d)", len(X), len(y))
	}

	Xb := addIntercept(X)
	Xt := transpose(Xb)
	b := matVec(Xt, y)

	w, err := m.solveNormal(Xt, Xb, b, ridgeLambda)
	if errors.Is(err, errSingular) {
		w, err = m.solveNormal(Xt, Xb, b, ridgeLambdaFallback)
	}
	if err != nil {
		return err
	}

	m.w = w
	m.Intercept = w[0]
	m.Coef = w[1:]
	return nil
}

func (m *LinearRegression) solveNormal(Xt, Xb [][]float64, b []float64, lambda float64) ([]float64, error) {
	A := matMul(Xt, Xb)
	for i := range A {
		A[i][i] += lambda
	}
	return solveLinear(A, b)
}

// Predict applies the fitted weights to each row of X
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	return matVec(addIntercept(X), m.w)
}

// Score returns the coefficient of determination R² = 1 - SSres/(SStot + ε).
// The raw value can be negative for a poor fit; callers clamp before using
// it as a confidence percentage.
func (m *LinearRegression) Score(X [][]float64, y []float64) float64 {
	pred := m.Predict(X)

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	ssRes, ssTot := 0.0, 0.0
	for i, v := range y {
		dr := v - pred[i]
		dt := v - mean
		ssRes += dr * dr
		ssTot += dt * dt
	}
	return 1.0 - ssRes/(ssTot+1e-12)
}
