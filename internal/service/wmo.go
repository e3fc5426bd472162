package service

// wmoDescriptions maps WMO weather codes to human-readable descriptions
var wmoDescriptions = map[int]string{
	0: "Clear Sky", 1: "Mainly Clear", 2: "Partly Cloudy", 3: "Overcast",
	45: "Fog", 48: "Icy Fog",
	51: "Light Drizzle", 53: "Moderate Drizzle", 55: "Dense Drizzle",
	61: "Slight Rain", 63: "Moderate Rain", 65: "Heavy Rain",
	71: "Slight Snow", 73: "Moderate Snow", 75: "Heavy Snow",
	77: "Snow Grains",
	80: "Slight Rain Showers", 81: "Moderate Rain Showers", 82: "Violent Rain Showers",
	85: "Slight Snow Showers", 86: "Heavy Snow Showers",
	95: "Thunderstorm", 96: "Thunderstorm with Hail", 99: "Heavy Thunderstorm",
}

// ParseWMOCode converts a WMO weather code to a human-readable description
func ParseWMOCode(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

// WeatherIconKey maps a WMO code to an icon key for the frontend SVG set
func WeatherIconKey(code int, isDay bool) string {
	switch {
	case code == 0:
		if isDay {
			return "sunny"
		}
		return "clear-night"
	case code == 1 || code == 2:
		return "partly-cloudy"
	case code == 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code == 51 || code == 53 || code == 55 ||
		code == 61 || code == 63 || code == 65 ||
		code == 80 || code == 81 || code == 82:
		return "rain"
	case code == 71 || code == 73 || code == 75 || code == 77 ||
		code == 85 || code == 86:
		return "snow"
	case code == 95 || code == 96 || code == 99:
		return "thunderstorm"
	default:
		return "cloudy"
	}
}
