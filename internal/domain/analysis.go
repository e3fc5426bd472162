package domain

// TrendForecast is the short-term temperature trend produced by the
// regression model. A series shorter than 4 points yields the degenerate
// flat forecast (slope 0, confidence 0, direction "stable").
type TrendForecast struct {
	HistoricalTemps []float64 `json:"historical_temps"`
	SmoothedTemps   []float64 `json:"smoothed_temps"`
	PredictedTemps  []float64 `json:"predicted_temps"`
	Slope           float64   `json:"slope"`
	TrendDirection  string    `json:"trend_direction"`
	Confidence      float64   `json:"confidence"`
	Next6hAvg       float64   `json:"next_6h_avg"`
	Next12hAvg      float64   `json:"next_12h_avg"`
}

// ClothingAdvice combines the rule-based primary recommendation with the
// learned classifier's cross-check. IsFallback marks a static fallback
// substituted after a classifier failure rather than a live prediction.
type ClothingAdvice struct {
	MLPrediction string   `json:"ml_prediction"`
	ClassIndex   int      `json:"class_index"`
	Primary      string   `json:"primary"`
	Items        []string `json:"items"`
	Confidence   float64  `json:"confidence"`
	IsFallback   bool     `json:"is_fallback,omitempty"`
}

// TemperatureCategory is one of the six fixed temperature bands
type TemperatureCategory struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ClusterAssignment is the weather-pattern archetype assigned by the
// clustering model.
type ClusterAssignment struct {
	ClusterID   int     `json:"cluster_id"`
	ClusterType string  `json:"cluster_type"`
	Confidence  float64 `json:"confidence"`
	IsFallback  bool    `json:"is_fallback,omitempty"`
}

// AnalysisSummary is the flat scalar view surfaced for display
type AnalysisSummary struct {
	CurrentTemp    float64 `json:"current_temp"`
	FeelsLike      float64 `json:"feels_like"`
	Humidity       float64 `json:"humidity"`
	WindSpeed      float64 `json:"wind_speed"`
	Category       string  `json:"category"`
	ClusterType    string  `json:"cluster_type"`
	TrendDirection string  `json:"trend_direction"`
}

// AnalysisResult is the fused output of one full analysis run. Trend is nil
// when the payload carried no hourly series at all.
type AnalysisResult struct {
	PredictedTemp        float64             `json:"predicted_temp"`
	Trend                *TrendForecast      `json:"trend,omitempty"`
	Clothing             ClothingAdvice      `json:"clothing"`
	Category             TemperatureCategory `json:"category"`
	Cluster              ClusterAssignment   `json:"cluster"`
	PredictionConfidence float64             `json:"prediction_confidence"`
	Summary              AnalysisSummary     `json:"summary"`
}

// CityAnalysis bundles everything the API returns for one city request
type CityAnalysis struct {
	Weather WeatherPayload `json:"weather"`
	ML      AnalysisResult `json:"ml"`
	Risks   RiskReport     `json:"risks"`
}
