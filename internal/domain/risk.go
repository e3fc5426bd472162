package domain

// RiskScore is the common shape of every physiological risk indicator:
// a clamped 0-100 score, an ordered severity level tag, and display fields.
type RiskScore struct {
	Score int    `json:"score"`
	Level string `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
	Tip   string `json:"tip"`
}

// HeatstrokeRisk carries the heat index the score was derived from
type HeatstrokeRisk struct {
	RiskScore
	HeatIndex float64 `json:"heat_index"`
}

// ColdExposureRisk carries the wind chill the score was derived from
type ColdExposureRisk struct {
	RiskScore
	WindChill float64 `json:"wind_chill"`
}

// HumidityDiscomfortRisk carries the humidex and dew point behind the score
type HumidityDiscomfortRisk struct {
	RiskScore
	Humidex  float64 `json:"humidex"`
	DewPoint float64 `json:"dew_point"`
}

// RiskReport aggregates the three independent risk indicators
type RiskReport struct {
	Heatstroke         HeatstrokeRisk         `json:"heatstroke"`
	ColdExposure       ColdExposureRisk       `json:"cold_exposure"`
	HumidityDiscomfort HumidityDiscomfortRisk `json:"humidity_discomfort"`
}
