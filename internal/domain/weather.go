package domain

import "time"

// City identifies a geocoded location
type City struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Region      string  `json:"region"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// CurrentConditions holds the current scalar readings for a location
type CurrentConditions struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	WeatherCode   int     `json:"weather_code"`
	Description   string  `json:"description"`
	IconKey       string  `json:"icon_key"`
	Pressure      float64 `json:"pressure"`
	Visibility    float64 `json:"visibility"` // km
	UVIndex       float64 `json:"uv_index"`
	CloudCover    float64 `json:"cloud_cover"`
	IsDay         bool    `json:"is_day"`
	Precipitation float64 `json:"precipitation"`
}

// Hourly24h holds up to 24 hourly readings used by the analysis engine
type Hourly24h struct {
	Times                    []string  `json:"times"`
	Temperatures             []float64 `json:"temperatures"`
	Humidity                 []float64 `json:"humidity"`
	WindSpeeds               []float64 `json:"wind_speeds"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	ApparentTemperatures     []float64 `json:"apparent_temperatures"`
}

// DailyForecast is one day of the 7-day outlook
type DailyForecast struct {
	Date             string  `json:"date"`
	TempMax          float64 `json:"temp_max"`
	TempMin          float64 `json:"temp_min"`
	WeatherCode      int     `json:"weather_code"`
	Description      string  `json:"description"`
	IconKey          string  `json:"icon_key"`
	PrecipitationSum float64 `json:"precipitation_sum"`
	WindMax          float64 `json:"wind_max"`
}

// WeatherPayload is the structured observation consumed by the analysis engine
type WeatherPayload struct {
	City          City            `json:"city"`
	Current       CurrentConditions `json:"current"`
	Hourly24h     Hourly24h       `json:"hourly_24h"`
	DailyForecast []DailyForecast `json:"daily_forecast"`
	FetchedAt     time.Time       `json:"fetched_at"`
	IsMock        bool            `json:"is_mock,omitempty"`
}
