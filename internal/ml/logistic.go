package ml

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Logistic training defaults: fixed iteration count, no convergence check,
// so training cost and results are deterministic for a given seed. The
// schedule is long enough for the clothing classifier to reproduce its
// banded ground truth away from band boundaries.
const (
	logisticMaxIter = 4000
	logisticLR      = 1.0
	logisticLambda  = 1e-4
)

// LogisticRegression is a multinomial softmax classifier trained by batch
// gradient descent on a cross-entropy objective with an L2 penalty on all
// weights except the intercept row.
type LogisticRegression struct {
	MaxIter int
	LR      float64
	Lambda  float64

	// W has shape (features+1) x classes; row 0 is the intercept.
	W [][]float64

	// Classes are the distinct labels seen during Fit, ascending.
	Classes []int
}

// NewLogisticRegression returns a classifier with the default hyperparameters
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		MaxIter: logisticMaxIter,
		LR:      logisticLR,
		Lambda:  logisticLambda,
	}
}

// Fit trains the classifier on X with integer labels y. The rng drives the
// Gaussian weight initialization; pass a seeded generator for reproducible
// training.
func (m *LogisticRegression) Fit(X [][]float64, y []int, rng *rand.Rand) error {
	if len(X) == 0 {
		return errors.New("ml: logistic fit on empty matrix")
	}
	if len(X) != len(y) {
		return fmt.Errorf("ml: logistic fit rows (%d) != labels (%d)", len(X), len(y))
	}

	n, d := len(X), len(X[0])
	m.Classes = uniqueSorted(y)
	k := len(m.Classes)

	labelToIdx := make(map[int]int, k)
	for i, c := range m.Classes {
		labelToIdx[c] = i
	}

	// One-hot encode targets
	Y := make([][]float64, n)
	for i := range Y {
		Y[i] = make([]float64, k)
		Y[i][labelToIdx[y[i]]] = 1.0
	}

	Xb := addIntercept(X)
	XbT := transpose(Xb)

	// Zero-mean Gaussian init scaled by sqrt(2/(d+k))
	scale := math.Sqrt(2.0 / float64(d+k))
	m.W = make([][]float64, d+1)
	for i := range m.W {
		m.W[i] = make([]float64, k)
		for j := range m.W[i] {
			m.W[i][j] = rng.NormFloat64() * scale
		}
	}

	for iter := 0; iter < m.MaxIter; iter++ {
		P := matMul(Xb, m.W)
		for i := range P {
			softmaxInPlace(P[i])
		}

		// grad = Xbᵗ (P - Y) / n, plus L2 on the non-intercept rows
		for i := range P {
			for j := 0; j < k; j++ {
				P[i][j] -= Y[i][j]
			}
		}
		grad := matMul(XbT, P)
		inv := 1.0 / float64(n)
		for r := range grad {
			for j := 0; j < k; j++ {
				grad[r][j] *= inv
				if r > 0 {
					grad[r][j] += m.Lambda * m.W[r][j]
				}
			}
		}

		for r := range m.W {
			for j := 0; j < k; j++ {
				m.W[r][j] -= m.LR * grad[r][j]
			}
		}
	}
	return nil
}

// PredictProba returns the per-class probability row for one feature vector
func (m *LogisticRegression) PredictProba(row []float64) ([]float64, error) {
	if m.W == nil {
		return nil, errors.New("ml: logistic predict before Fit")
	}
	if len(row)+1 != len(m.W) {
		return nil, fmt.Errorf("ml: logistic fitted on %d features, got %d", len(m.W)-1, len(row))
	}

	k := len(m.W[0])
	logits := make([]float64, k)
	for j := 0; j < k; j++ {
		sum := m.W[0][j]
		for i, v := range row {
			sum += m.W[i+1][j] * v
		}
		logits[j] = sum
	}
	softmaxInPlace(logits)
	return logits, nil
}

// Predict returns the argmax class label for one feature vector
func (m *LogisticRegression) Predict(row []float64) (int, error) {
	proba, err := m.PredictProba(row)
	if err != nil {
		return 0, err
	}
	return m.Classes[argmax(proba)], nil
}

// softmaxInPlace normalizes a logit row into probabilities. The row maximum
// is subtracted before exponentiating to prevent overflow.
func softmaxInPlace(row []float64) {
	max := row[0]
	for _, v := range row[1:] {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	for i, v := range row {
		e := math.Exp(v - max)
		row[i] = e
		sum += e
	}
	for i := range row {
		row[i] /= sum
	}
}

func argmax(row []float64) int {
	best := 0
	for i, v := range row {
		if v > row[best] {
			best = i
		}
	}
	return best
}

func uniqueSorted(labels []int) []int {
	seen := make(map[int]struct{}, len(labels))
	var out []int
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Ints(out)
	return out
}
