package ml

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const kmeansMaxIter = 100

// KMeans partitions points into NClusters clusters via Lloyd's algorithm
// with k-means++ seeding. Fit runs NInit independent restarts from one
// generator and keeps the result with the lowest inertia. Centers are
// immutable once Fit returns.
type KMeans struct {
	NClusters int
	MaxIter   int
	NInit     int

	Centers [][]float64
	Labels  []int
	Inertia float64
}

// NewKMeans returns a model with the default iteration cap
func NewKMeans(k, nInit int) *KMeans {
	return &KMeans{
		NClusters: k,
		MaxIter:   kmeansMaxIter,
		NInit:     nInit,
		Inertia:   math.Inf(1),
	}
}

// Fit clusters X, drawing all randomness from rng so repeated runs with the
// same seed are deterministic.
func (m *KMeans) Fit(X [][]float64, rng *rand.Rand) error {
	if len(X) == 0 {
		return errors.New("ml: kmeans fit on empty matrix")
	}
	if len(X) < m.NClusters {
		return fmt.Errorf("ml: kmeans needs at least %d points, got %d", m.NClusters, len(X))
	}

	bestInertia := math.Inf(1)
	var bestCenters [][]float64
	var bestLabels []int

	for run := 0; run < m.NInit; run++ {
		centers, labels, inertia := m.runOnce(X, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			bestCenters = centers
			bestLabels = labels
		}
	}

	m.Centers = bestCenters
	m.Labels = bestLabels
	m.Inertia = bestInertia
	return nil
}

// runOnce executes one k-means++ seeding followed by Lloyd iteration
func (m *KMeans) runOnce(X [][]float64, rng *rand.Rand) ([][]float64, []int, float64) {
	centers := m.initCenters(X, rng)
	labels := make([]int, len(X))

	for iter := 0; iter < m.MaxIter; iter++ {
		newLabels := make([]int, len(X))
		for i, x := range X {
			newLabels[i] = nearestCenter(x, centers)
		}
		if equalLabels(newLabels, labels) {
			break
		}
		labels = newLabels

		// Recompute each center as the mean of its members. An empty
		// cluster keeps its previous center.
		dim := len(X[0])
		sums := make([][]float64, m.NClusters)
		counts := make([]int, m.NClusters)
		for k := range sums {
			sums[k] = make([]float64, dim)
		}
		for i, x := range X {
			k := labels[i]
			counts[k]++
			for j, v := range x {
				sums[k][j] += v
			}
		}
		for k := range centers {
			if counts[k] == 0 {
				continue
			}
			for j := range centers[k] {
				centers[k][j] = sums[k][j] / float64(counts[k])
			}
		}
	}

	inertia := 0.0
	for i, x := range X {
		inertia += squaredDistance(x, centers[labels[i]])
	}
	return centers, labels, inertia
}

// initCenters seeds the clusters k-means++ style: the first center is drawn
// uniformly, each later center with probability proportional to its squared
// distance from the nearest already-chosen center.
func (m *KMeans) initCenters(X [][]float64, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, m.NClusters)
	first := append([]float64(nil), X[rng.Intn(len(X))]...)
	centers = append(centers, first)

	for len(centers) < m.NClusters {
		dists := make([]float64, len(X))
		total := 0.0
		for i, x := range X {
			min := math.Inf(1)
			for _, c := range centers {
				if d := squaredDistance(x, c); d < min {
					min = d
				}
			}
			dists[i] = min
			total += min
		}

		idx := 0
		if total > 0 {
			r := rng.Float64() * total
			cumulative := 0.0
			for i, d := range dists {
				cumulative += d
				if cumulative >= r {
					idx = i
					break
				}
			}
		} else {
			// All points coincide with existing centers
			idx = rng.Intn(len(X))
		}
		centers = append(centers, append([]float64(nil), X[idx]...))
	}
	return centers
}

// Predict assigns a point to the nearest fitted center
func (m *KMeans) Predict(row []float64) (int, error) {
	if m.Centers == nil {
		return 0, errors.New("ml: kmeans predict before Fit")
	}
	if len(row) != len(m.Centers[0]) {
		return 0, fmt.Errorf("ml: kmeans fitted on %d features, got %d", len(m.Centers[0]), len(row))
	}
	return nearestCenter(row, m.Centers), nil
}

// DistanceTo returns the Euclidean distance from row to the given center
func (m *KMeans) DistanceTo(row []float64, cluster int) float64 {
	return math.Sqrt(squaredDistance(row, m.Centers[cluster]))
}

// nearestCenter returns the index of the closest center, ties broken by
// lowest index.
func nearestCenter(x []float64, centers [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for k, c := range centers {
		if d := squaredDistance(x, c); d < bestDist {
			bestDist = d
			best = k
		}
	}
	return best
}

func equalLabels(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
