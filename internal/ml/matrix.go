package ml

import (
	"errors"
	"fmt"
	"math"
)

// Dense matrices are plain row-major [][]float64 slices. Rows are samples,
// columns are features. All helpers below assume rectangular input.

var errSingular = errors.New("ml: matrix is singular")

// addIntercept prepends a column of ones to X
func addIntercept(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row)+1)
		r[0] = 1.0
		copy(r[1:], row)
		out[i] = r
	}
	return out
}

// transpose returns Xᵗ
func transpose(X [][]float64) [][]float64 {
	if len(X) == 0 {
		return nil
	}
	rows, cols := len(X), len(X[0])
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = X[i][j]
		}
	}
	return out
}

// matMul returns A @ B
func matMul(A, B [][]float64) [][]float64 {
	n, inner, p := len(A), len(B), len(B[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, p)
		for k := 0; k < inner; k++ {
			a := A[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < p; j++ {
				row[j] += a * B[k][j]
			}
		}
		out[i] = row
	}
	return out
}

// matVec returns A @ v
func matVec(A [][]float64, v []float64) []float64 {
	out := make([]float64, len(A))
	for i, row := range A {
		sum := 0.0
		for j, a := range row {
			sum += a * v[j]
		}
		out[i] = sum
	}
	return out
}

// solveLinear solves A x = b by Gaussian elimination with partial pivoting.
// A is destroyed in the process; callers pass a scratch copy.
func solveLinear(A [][]float64, b []float64) ([]float64, error) {
	n := len(A)
	if n == 0 || len(b) != n {
		return nil, fmt.Errorf("ml: solve dimension mismatch (%d rows, %d rhs)", n, len(b))
	}

	x := make([]float64, n)
	copy(x, b)

	for col := 0; col < n; col++ {
		// Partial pivot: largest absolute value in the column
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(A[r][col]) > math.Abs(A[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(A[pivot][col]) < 1e-12 {
			return nil, errSingular
		}
		A[col], A[pivot] = A[pivot], A[col]
		x[col], x[pivot] = x[pivot], x[col]

		for r := col + 1; r < n; r++ {
			factor := A[r][col] / A[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				A[r][c] -= factor * A[col][c]
			}
			x[r] -= factor * x[col]
		}
	}

	// Back substitution
	for col := n - 1; col >= 0; col-- {
		sum := x[col]
		for c := col + 1; c < n; c++ {
			sum -= A[col][c] * x[c]
		}
		x[col] = sum / A[col][col]
	}
	return x, nil
}

// squaredDistance returns the squared Euclidean distance between a and b
func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
