package ml

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/weatherintel/backend/pkg/utils"
)

// Seeds for synthetic training-data generation. Fixed so repeated process
// starts train statistically identical models.
const (
	clothingSeed int64 = 42
	patternSeed  int64 = 0
)

const (
	clothingSampleCount = 2000
	patternSamplesPer   = 400
	patternClusterCount = 4
	patternRestarts     = 5
)

// ClusterLabels are the named weather archetypes, indexed by cluster id
var ClusterLabels = []string{"Dry Heat", "Humid Heat", "Windy Cold", "Mild Pleasant"}

// patternCenters are the archetype coordinates (temperature, humidity, wind)
// the synthetic training blobs are sampled around.
var patternCenters = [][]float64{
	{37.0, 20.0, 15.0},
	{33.0, 85.0, 10.0},
	{5.0, 60.0, 45.0},
	{20.0, 55.0, 12.0},
}

// patternScales are the per-feature blob standard deviations
var patternScales = []float64{4, 12, 8}

// Physical bounds the synthetic samples are clipped to
var (
	patternClipLow  = []float64{-20, 0, 0}
	patternClipHigh = []float64{50, 100, 120}
)

// ModelRegistry owns the process-wide trained models. Both models are
// trained lazily on first use; sync.Once guarantees exactly one training run
// with concurrent first callers blocking until it completes. Once trained,
// models are read-only and safe for concurrent prediction.
type ModelRegistry struct {
	clothingOnce   sync.Once
	clothingModel  *LogisticRegression
	clothingScaler *StandardScaler
	clothingErr    error

	clusterOnce   sync.Once
	clusterModel  *KMeans
	clusterScaler *StandardScaler
	clusterErr    error
}

// NewModelRegistry returns an empty registry; no training happens until the
// first model access.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{}
}

// ClothingModel returns the trained clothing classifier and its scaler,
// training them on first call.
func (r *ModelRegistry) ClothingModel() (*LogisticRegression, *StandardScaler, error) {
	r.clothingOnce.Do(r.trainClothing)
	return r.clothingModel, r.clothingScaler, r.clothingErr
}

// ClusterModel returns the trained weather-pattern clusterer and its scaler,
// training them on first call.
func (r *ModelRegistry) ClusterModel() (*KMeans, *StandardScaler, error) {
	r.clusterOnce.Do(r.trainCluster)
	return r.clusterModel, r.clusterScaler, r.clusterErr
}

func (r *ModelRegistry) trainClothing() {
	rng := rand.New(rand.NewSource(clothingSeed))
	X, y := buildClothingTrainingData(rng)

	scaler := &StandardScaler{}
	Xs, err := scaler.FitTransform(X)
	if err != nil {
		r.clothingErr = fmt.Errorf("ml: clothing training data: %w", err)
		return
	}

	model := NewLogisticRegression()
	if err := model.Fit(Xs, y, rng); err != nil {
		r.clothingErr = fmt.Errorf("ml: clothing training: %w", err)
		return
	}

	r.clothingModel = model
	r.clothingScaler = scaler
}

func (r *ModelRegistry) trainCluster() {
	rng := rand.New(rand.NewSource(patternSeed))
	X := buildPatternTrainingData(rng)

	scaler := &StandardScaler{}
	Xs, err := scaler.FitTransform(X)
	if err != nil {
		r.clusterErr = fmt.Errorf("ml: pattern training data: %w", err)
		return
	}

	model := NewKMeans(patternClusterCount, patternRestarts)
	if err := model.Fit(Xs, rng); err != nil {
		r.clusterErr = fmt.Errorf("ml: pattern training: %w", err)
		return
	}

	r.clusterModel = model
	r.clusterScaler = scaler
}

// buildClothingTrainingData samples uniform weather conditions and labels
// each by its effective-temperature clothing bucket. This is the ground
// truth the classifier learns to approximate.
func buildClothingTrainingData(rng *rand.Rand) ([][]float64, []int) {
	X := make([][]float64, clothingSampleCount)
	y := make([]int, clothingSampleCount)
	for i := 0; i < clothingSampleCount; i++ {
		temp := uniform(rng, -10, 45)
		humidity := uniform(rng, 10, 100)
		wind := uniform(rng, 0, 80)
		X[i] = []float64{temp, humidity, wind}
		y[i] = clothingClassIndex(effectiveTemperature(temp, wind))
	}
	return X, y
}

// buildPatternTrainingData samples one Gaussian blob per archetype, clipped
// to physically plausible bounds.
func buildPatternTrainingData(rng *rand.Rand) [][]float64 {
	X := make([][]float64, 0, len(patternCenters)*patternSamplesPer)
	for _, center := range patternCenters {
		for i := 0; i < patternSamplesPer; i++ {
			row := make([]float64, len(center))
			for j := range row {
				v := center[j] + rng.NormFloat64()*patternScales[j]
				row[j] = utils.Clamp(v, patternClipLow[j], patternClipHigh[j])
			}
			X = append(X, row)
		}
	}
	return X
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
