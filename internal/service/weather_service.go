package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/pkg/utils"
)

// ErrCityNotFound is returned when geocoding resolves no location
var ErrCityNotFound = errors.New("weather: city not found")

// WeatherConfig holds the acquisition endpoints and retry policy
type WeatherConfig struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
	Retries      int
	Backoff      time.Duration
}

// WeatherService geocodes a city and fetches current, hourly and daily
// weather from Open-Meteo, assembling the structured payload the analysis
// engine consumes.
type WeatherService struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
	retries      int
	backoff      time.Duration
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg WeatherConfig) *WeatherService {
	if cfg.GeocodingURL == "" {
		cfg.GeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = "https://api.open-meteo.com/v1/forecast"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 1500 * time.Millisecond
	}
	return &WeatherService{
		geocodingURL: cfg.GeocodingURL,
		forecastURL:  cfg.ForecastURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		retries:      cfg.Retries,
		backoff:      cfg.Backoff,
	}
}

type geocodingResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Country     string  `json:"country"`
		CountryCode string  `json:"country_code"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Timezone    string  `json:"timezone"`
		Admin1      string  `json:"admin1"`
	} `json:"results"`
}

type openMeteoResponse struct {
	Current struct {
		Temperature     float64 `json:"temperature_2m"`
		ApparentTemp    float64 `json:"apparent_temperature"`
		Humidity        float64 `json:"relative_humidity_2m"`
		WindSpeed       float64 `json:"wind_speed_10m"`
		WindDirection   float64 `json:"wind_direction_10m"`
		Precipitation   float64 `json:"precipitation"`
		WeatherCode     int     `json:"weather_code"`
		SurfacePressure float64 `json:"surface_pressure"`
		Visibility      float64 `json:"visibility"`
		UVIndex         float64 `json:"uv_index"`
		CloudCover      float64 `json:"cloud_cover"`
		IsDay           int     `json:"is_day"`
	} `json:"current"`
	Hourly struct {
		Time             []string  `json:"time"`
		Temperature      []float64 `json:"temperature_2m"`
		Humidity         []float64 `json:"relative_humidity_2m"`
		WindSpeed        []float64 `json:"wind_speed_10m"`
		ApparentTemp     []float64 `json:"apparent_temperature"`
		PrecipitationPct []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
	Daily struct {
		Time             []string  `json:"time"`
		TempMax          []float64 `json:"temperature_2m_max"`
		TempMin          []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WeatherCode      []int     `json:"weather_code"`
		WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// BuildPayload is the main acquisition entry point: geocode the city, fetch
// the forecast, assemble the payload. A geocoding miss returns
// ErrCityNotFound; a forecast fetch failure degrades to a seasonal mock
// payload rather than failing the request.
func (s *WeatherService) BuildPayload(ctx context.Context, cityName string) (domain.WeatherPayload, error) {
	city, err := s.geocodeCity(ctx, cityName)
	if err != nil {
		return domain.WeatherPayload{}, err
	}

	raw, err := s.fetchForecast(ctx, city)
	if err != nil {
		log.Printf("Forecast fetch failed for %q, serving mock payload: %v", city.Name, err)
		return s.mockPayload(city), nil
	}

	return assemblePayload(city, raw), nil
}

// geocodeCity resolves a city name to coordinates via the Open-Meteo
// geocoding API.
func (s *WeatherService) geocodeCity(ctx context.Context, cityName string) (domain.City, error) {
	params := url.Values{}
	params.Set("name", cityName)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	body, err := s.getWithRetry(ctx, s.geocodingURL+"?"+params.Encode())
	if err != nil {
		return domain.City{}, fmt.Errorf("weather: geocoding request: %w", err)
	}

	var geo geocodingResponse
	if err := json.Unmarshal(body, &geo); err != nil {
		return domain.City{}, fmt.Errorf("weather: failed to decode geocoding response: %w", err)
	}
	if len(geo.Results) == 0 {
		return domain.City{}, ErrCityNotFound
	}

	r := geo.Results[0]
	tz := r.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return domain.City{
		Name:        r.Name,
		Country:     r.Country,
		CountryCode: r.CountryCode,
		Region:      r.Admin1,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Timezone:    tz,
	}, nil
}

// fetchForecast pulls current + hourly + 7-day daily data for a location
func (s *WeatherService) fetchForecast(ctx context.Context, city domain.City) (openMeteoResponse, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", city.Latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", city.Longitude))
	params.Set("current", strings.Join([]string{
		"temperature_2m", "apparent_temperature", "relative_humidity_2m",
		"wind_speed_10m", "wind_direction_10m", "precipitation",
		"weather_code", "surface_pressure", "visibility", "uv_index",
		"cloud_cover", "is_day",
	}, ","))
	params.Set("hourly", strings.Join([]string{
		"temperature_2m", "relative_humidity_2m", "wind_speed_10m",
		"apparent_temperature", "precipitation_probability",
	}, ","))
	params.Set("daily", strings.Join([]string{
		"temperature_2m_max", "temperature_2m_min", "precipitation_sum",
		"weather_code", "wind_speed_10m_max",
	}, ","))
	params.Set("timezone", city.Timezone)
	params.Set("forecast_days", "7")
	params.Set("wind_speed_unit", "kmh")

	body, err := s.getWithRetry(ctx, s.forecastURL+"?"+params.Encode())
	if err != nil {
		return openMeteoResponse{}, err
	}

	var raw openMeteoResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return openMeteoResponse{}, fmt.Errorf("weather: failed to decode forecast response: %w", err)
	}
	return raw, nil
}

// getWithRetry performs a GET with linear backoff. Client errors (400, 404)
// are not retried.
func (s *WeatherService) getWithRetry(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.backoff * time.Duration(attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.Printf("Request failed on attempt %d: %v", attempt+1, err)
			continue
		}

		body, readErr := readBody(resp)
		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
			// No point retrying client errors
			return nil, fmt.Errorf("weather: upstream returned status %d", resp.StatusCode)
		default:
			lastErr = fmt.Errorf("weather: upstream returned status %d", resp.StatusCode)
			log.Printf("HTTP error on attempt %d: %v", attempt+1, lastErr)
		}
	}
	return nil, lastErr
}

// maxResponseBytes bounds upstream response bodies
const maxResponseBytes = 4 << 20

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}

// assemblePayload maps the raw Open-Meteo response into the domain payload
func assemblePayload(city domain.City, raw openMeteoResponse) domain.WeatherPayload {
	cur := raw.Current

	current := domain.CurrentConditions{
		Temperature:   utils.RoundTo(cur.Temperature, 1),
		FeelsLike:     utils.RoundTo(cur.ApparentTemp, 1),
		Humidity:      cur.Humidity,
		WindSpeed:     utils.RoundTo(cur.WindSpeed, 1),
		WindDirection: cur.WindDirection,
		WeatherCode:   cur.WeatherCode,
		Description:   ParseWMOCode(cur.WeatherCode),
		IconKey:       WeatherIconKey(cur.WeatherCode, cur.IsDay == 1),
		Pressure:      utils.RoundTo(cur.SurfacePressure, 1),
		Visibility:    utils.RoundTo(cur.Visibility/1000, 1),
		UVIndex:       cur.UVIndex,
		CloudCover:    cur.CloudCover,
		IsDay:         cur.IsDay == 1,
		Precipitation: utils.RoundTo(cur.Precipitation, 1),
	}

	hourly := domain.Hourly24h{
		Times:                    firstN(raw.Hourly.Time, 24),
		Temperatures:             roundEach(firstN(raw.Hourly.Temperature, 24)),
		Humidity:                 firstN(raw.Hourly.Humidity, 24),
		WindSpeeds:               roundEach(firstN(raw.Hourly.WindSpeed, 24)),
		PrecipitationProbability: firstN(raw.Hourly.PrecipitationPct, 24),
		ApparentTemperatures:     roundEach(firstN(raw.Hourly.ApparentTemp, 24)),
	}

	var daily []domain.DailyForecast
	for i := 0; i < len(raw.Daily.Time) && i < 7; i++ {
		day := domain.DailyForecast{Date: raw.Daily.Time[i]}
		if i < len(raw.Daily.TempMax) {
			day.TempMax = utils.RoundTo(raw.Daily.TempMax[i], 1)
		}
		if i < len(raw.Daily.TempMin) {
			day.TempMin = utils.RoundTo(raw.Daily.TempMin[i], 1)
		}
		if i < len(raw.Daily.WeatherCode) {
			day.WeatherCode = raw.Daily.WeatherCode[i]
		}
		day.Description = ParseWMOCode(day.WeatherCode)
		day.IconKey = WeatherIconKey(day.WeatherCode, true)
		if i < len(raw.Daily.PrecipitationSum) {
			day.PrecipitationSum = utils.RoundTo(raw.Daily.PrecipitationSum[i], 1)
		}
		if i < len(raw.Daily.WindSpeedMax) {
			day.WindMax = utils.RoundTo(raw.Daily.WindSpeedMax[i], 1)
		}
		daily = append(daily, day)
	}

	return domain.WeatherPayload{
		City:          city,
		Current:       current,
		Hourly24h:     hourly,
		DailyForecast: daily,
		FetchedAt:     time.Now().UTC(),
	}
}

// mockPayload returns a seasonal payload so the analysis pipeline still has
// plausible input when the upstream API is unreachable.
func (s *WeatherService) mockPayload(city domain.City) domain.WeatherPayload {
	month := time.Now().Month()
	var temp, feelsLike float64
	var description string
	var code int

	switch {
	case month >= 12 || month <= 2:
		temp, feelsLike, description, code = -2.0, -6.0, "Slight Snow", 71
	case month >= 3 && month <= 5:
		temp, feelsLike, description, code = 14.0, 12.0, "Partly Cloudy", 2
	case month >= 6 && month <= 8:
		temp, feelsLike, description, code = 27.0, 29.0, "Clear Sky", 0
	default:
		temp, feelsLike, description, code = 9.0, 7.0, "Overcast", 3
	}

	// Flat-ish diurnal curve around the seasonal base
	temps := make([]float64, 24)
	times := make([]string, 24)
	now := time.Now().UTC().Truncate(time.Hour)
	for i := range temps {
		temps[i] = utils.RoundTo(temp+float64(i%12)*0.2, 1)
		times[i] = now.Add(time.Duration(i) * time.Hour).Format("2006-01-02T15:04")
	}

	return domain.WeatherPayload{
		City: city,
		Current: domain.CurrentConditions{
			Temperature: temp,
			FeelsLike:   feelsLike,
			Humidity:    65,
			WindSpeed:   8.0,
			WeatherCode: code,
			Description: description,
			IconKey:     WeatherIconKey(code, true),
			Pressure:    1015,
			Visibility:  10,
			UVIndex:     3,
			IsDay:       true,
		},
		Hourly24h: domain.Hourly24h{
			Times:        times,
			Temperatures: temps,
		},
		FetchedAt: time.Now().UTC(),
		IsMock:    true,
	}
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	return append([]T(nil), s...)
}

func roundEach(values []float64) []float64 {
	for i, v := range values {
		values[i] = utils.RoundTo(v, 1)
	}
	return values
}
