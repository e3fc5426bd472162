package ml

import (
	"log"

	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/pkg/utils"
)

// Fused-confidence weights. Only the trend sub-result can be absent (no
// hourly series) and takes a stand-in confidence; clothing and cluster
// results are always present, live or fallback, and contribute their own
// confidence even when it is a genuine zero.
const (
	trendWeight    = 0.40
	clothingWeight = 0.35
	clusterWeight  = 0.25

	trendDefaultConf = 70.0
)

// Defaults for missing payload fields
const (
	defaultTemperature = 20.0
	defaultHumidity    = 50.0
	defaultWindSpeed   = 0.0
)

// clusterConfidenceFalloff converts standardized distance-to-center into a
// 0-100 confidence: 100 at the center, 0 at distance 5 or beyond.
const clusterConfidenceFalloff = 20.0

// Analyzer composes the trend regression, clothing classifiers, pattern
// clusterer and rule logic into one fused analysis. Each learned sub-model
// is isolated: a failure yields a logged warning and a static fallback, so
// one broken component cannot abort the whole analysis.
type Analyzer struct {
	registry *ModelRegistry
}

// NewAnalyzer creates an analyzer backed by the given model registry
func NewAnalyzer(registry *ModelRegistry) *Analyzer {
	return &Analyzer{registry: registry}
}

// PredictClothing runs the learned clothing classifier on the current
// scalar readings.
func (a *Analyzer) PredictClothing(temp, humidity, wind float64) (domain.ClothingAdvice, error) {
	model, scaler, err := a.registry.ClothingModel()
	if err != nil {
		return domain.ClothingAdvice{}, err
	}

	feat, err := scaler.TransformRow([]float64{temp, humidity, wind})
	if err != nil {
		return domain.ClothingAdvice{}, err
	}
	proba, err := model.PredictProba(feat)
	if err != nil {
		return domain.ClothingAdvice{}, err
	}

	class := argmax(proba)
	return domain.ClothingAdvice{
		MLPrediction: ClothingLabel(class),
		ClassIndex:   class,
		Confidence:   utils.RoundTo(proba[class]*100, 1),
	}, nil
}

// PredictCluster assigns the current conditions to a weather-pattern
// archetype with a distance-based confidence.
func (a *Analyzer) PredictCluster(temp, humidity, wind float64) (domain.ClusterAssignment, error) {
	model, scaler, err := a.registry.ClusterModel()
	if err != nil {
		return domain.ClusterAssignment{}, err
	}

	feat, err := scaler.TransformRow([]float64{temp, humidity, wind})
	if err != nil {
		return domain.ClusterAssignment{}, err
	}
	cluster, err := model.Predict(feat)
	if err != nil {
		return domain.ClusterAssignment{}, err
	}

	dist := model.DistanceTo(feat, cluster)
	confidence := utils.Clamp(100.0-dist*clusterConfidenceFalloff, 0, 100)

	return domain.ClusterAssignment{
		ClusterID:   cluster,
		ClusterType: ClusterLabels[cluster],
		Confidence:  utils.RoundTo(confidence, 1),
	}, nil
}

// RunFullAnalysis is the master entry point: it extracts the current scalar
// readings and the hourly series from the payload, runs every sub-model, and
// fuses the confidences into one result. It never fails; degraded sub-models
// are replaced by their documented fallbacks.
func (a *Analyzer) RunFullAnalysis(payload domain.WeatherPayload) domain.AnalysisResult {
	current := payload.Current
	temp := current.Temperature
	humidity := current.Humidity
	wind := current.WindSpeed
	if current == (domain.CurrentConditions{}) {
		// Missing current section: fall back to plausible constants
		temp = defaultTemperature
		humidity = defaultHumidity
		wind = defaultWindSpeed
	}
	feelsLike := current.FeelsLike
	if feelsLike == 0 {
		feelsLike = temp
	}
	hourlyTemps := payload.Hourly24h.Temperatures

	var trend *domain.TrendForecast
	if len(hourlyTemps) > 0 {
		t, err := PredictTemperatureTrend(hourlyTemps)
		if err != nil {
			log.Printf("Trend prediction failed: %v", err)
		} else {
			trend = &t
		}
	}

	clothing, err := a.PredictClothing(temp, humidity, wind)
	if err != nil {
		log.Printf("Clothing prediction failed: %v", err)
		clothing = fallbackClothing()
	}

	primary, items := ClothingFromTemp(temp, wind, humidity)
	clothing.Primary = primary
	clothing.Items = items

	category := ClassifyTemperature(temp)

	cluster, err := a.PredictCluster(temp, humidity, wind)
	if err != nil {
		log.Printf("Cluster prediction failed: %v", err)
		cluster = fallbackCluster()
	}

	trendConf := trendDefaultConf
	trendDirection := "stable"
	predictedTemp := utils.RoundTo(temp, 1)
	if trend != nil {
		trendConf = trend.Confidence
		trendDirection = trend.TrendDirection
		predictedTemp = trend.Next6hAvg
	}

	overall := utils.RoundTo(
		trendConf*trendWeight+
			clothing.Confidence*clothingWeight+
			cluster.Confidence*clusterWeight, 1)

	return domain.AnalysisResult{
		PredictedTemp:        predictedTemp,
		Trend:                trend,
		Clothing:             clothing,
		Category:             category,
		Cluster:              cluster,
		PredictionConfidence: overall,
		Summary: domain.AnalysisSummary{
			CurrentTemp:    temp,
			FeelsLike:      feelsLike,
			Humidity:       humidity,
			WindSpeed:      wind,
			Category:       category.Label,
			ClusterType:    cluster.ClusterType,
			TrendDirection: trendDirection,
		},
	}
}

// fallbackClothing is the documented static value substituted when the
// learned classifier fails.
func fallbackClothing() domain.ClothingAdvice {
	return domain.ClothingAdvice{
		MLPrediction: "T-Shirt & Jeans",
		ClassIndex:   4,
		Confidence:   75.0,
		IsFallback:   true,
	}
}

// fallbackCluster is the documented static value substituted when the
// clusterer fails.
func fallbackCluster() domain.ClusterAssignment {
	return domain.ClusterAssignment{
		ClusterID:   3,
		ClusterType: "Mild Pleasant",
		Confidence:  70.0,
		IsFallback:  true,
	}
}
