package risk

import (
	"math"

	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/pkg/utils"
)

// UV contribution to the heatstroke score is capped at 20 points
const uvContributionCap = 20.0

// CalculateHeatstrokeRisk scores heatstroke risk 0-100 from the heat index
// plus a capped UV contribution.
func CalculateHeatstrokeRisk(temp, humidity, uvIndex float64) domain.HeatstrokeRisk {
	hi := HeatIndex(temp, humidity)
	uvContrib := math.Min(uvIndex*2, uvContributionCap)

	var base float64
	var level, label, color string
	switch {
	case hi < 27:
		base, level, label, color = 0, "none", "No Risk", "#22c55e"
	case hi < 32:
		base, level, label, color = 20, "low", "Low", "#84cc16"
	case hi < 38:
		base, level, label, color = 45, "moderate", "Moderate", "#eab308"
	case hi < 44:
		base, level, label, color = 70, "high", "High", "#f97316"
	default:
		base, level, label, color = 90, "extreme", "Extreme", "#ef4444"
	}

	score := math.Min(100, base+uvContrib)

	return domain.HeatstrokeRisk{
		RiskScore: domain.RiskScore{
			Score: int(math.Round(score)),
			Level: level,
			Label: label,
			Color: color,
			Tip:   heatstrokeTips[level],
		},
		HeatIndex: utils.RoundTo(hi, 1),
	}
}

var heatstrokeTips = map[string]string{
	"none":     "Conditions are comfortable.",
	"low":      "Stay hydrated during outdoor activity.",
	"moderate": "Limit prolonged sun exposure. Drink water frequently.",
	"high":     "Avoid strenuous outdoor activity. Seek shade and stay cool.",
	"extreme":  "Danger: avoid all outdoor exposure. Stay in air conditioning.",
}

// CalculateColdRisk scores cold exposure / frostbite risk 0-100 from the
// wind chill, with a wet-cold humidity penalty below 5°C.
func CalculateColdRisk(temp, windKmh, humidity float64) domain.ColdExposureRisk {
	wc := WindChill(temp, windKmh)

	humidityFactor := 0.0
	if temp < 5 {
		humidityFactor = math.Max(0, (humidity-60)*0.2)
	}

	var base float64
	var level, label, color string
	switch {
	case wc >= 10:
		base, level, label, color = 0, "none", "No Risk", "#22c55e"
	case wc >= 0:
		base, level, label, color = 15, "low", "Low", "#38bdf8"
	case wc >= -10:
		base, level, label, color = 35, "moderate", "Moderate", "#818cf8"
	case wc >= -25:
		base, level, label, color = 60, "high", "High", "#6366f1"
	default:
		base, level, label, color = 85, "extreme", "Extreme", "#4f46e5"
	}

	score := math.Min(100, base+humidityFactor)

	return domain.ColdExposureRisk{
		RiskScore: domain.RiskScore{
			Score: int(math.Round(score)),
			Level: level,
			Label: label,
			Color: color,
			Tip:   coldTips[level],
		},
		WindChill: wc,
	}
}

var coldTips = map[string]string{
	"none":     "Pleasant conditions for outdoor activity.",
	"low":      "Wear a light jacket for extended outdoor time.",
	"moderate": "Layer up. Protect exposed skin.",
	"high":     "Serious cold risk. Minimize outdoor exposure. Cover all skin.",
	"extreme":  "Life-threatening wind chill. Do not go outdoors.",
}

// CalculateHumidityDiscomfort scores humidex-based discomfort 0-100.
// High temperature combined with high humidity is most uncomfortable.
func CalculateHumidityDiscomfort(temp, humidity float64) domain.HumidityDiscomfortRisk {
	humidex, dewPoint := Humidex(temp, humidity)

	var score float64
	var level, label, color string
	switch {
	case humidex < 20:
		score, level, label, color = 0, "comfortable", "Comfortable", "#22c55e"
	case humidex < 30:
		score, level, label, color = 20, "little_discomfort", "Little Discomfort", "#84cc16"
	case humidex < 40:
		score, level, label, color = 50, "noticeable", "Noticeable Discomfort", "#eab308"
	case humidex < 45:
		score, level, label, color = 72, "evident", "Evident Discomfort", "#f97316"
	case humidex < 54:
		score, level, label, color = 88, "intense", "Intense Discomfort", "#ef4444"
	default:
		score, level, label, color = 100, "dangerous", "Dangerous", "#dc2626"
	}

	return domain.HumidityDiscomfortRisk{
		RiskScore: domain.RiskScore{
			Score: int(math.Round(utils.Clamp(score, 0, 100))),
			Level: level,
			Label: label,
			Color: color,
			Tip:   humidityTips[level],
		},
		Humidex:  utils.RoundTo(humidex, 1),
		DewPoint: utils.RoundTo(dewPoint, 1),
	}
}

var humidityTips = map[string]string{
	"comfortable":       "Humidity levels are pleasant.",
	"little_discomfort": "Slight humidity. Generally fine.",
	"noticeable":        "Noticeably humid. Light breathable clothing advised.",
	"evident":           "Oppressively humid. Rest frequently and stay hydrated.",
	"intense":           "Intense discomfort. Limit outdoor activity.",
	"dangerous":         "Dangerous heat-humidity combination. Stay indoors.",
}

// ComputeAll derives the three independent risk indicators from current
// conditions. Inputs are clamped or defaulted before the formulas run, so
// risk computation has no error path.
func ComputeAll(current domain.CurrentConditions) domain.RiskReport {
	temp := current.Temperature
	humidity := utils.Clamp(current.Humidity, 0, 100)
	wind := math.Max(current.WindSpeed, 0)
	uv := math.Max(current.UVIndex, 0)

	return domain.RiskReport{
		Heatstroke:         CalculateHeatstrokeRisk(temp, humidity, uv),
		ColdExposure:       CalculateColdRisk(temp, wind, humidity),
		HumidityDiscomfort: CalculateHumidityDiscomfort(temp, humidity),
	}
}
