package http

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/weatherintel/backend/internal/domain"
	"github.com/weatherintel/backend/internal/service"
)

// AnalysisProvider is the slice of the analysis service the handlers need
type AnalysisProvider interface {
	AnalyzeCity(ctx context.Context, city string) (domain.CityAnalysis, error)
	GetHistory(ctx context.Context, city string, hours int) ([]domain.AnalysisSnapshot, error)
	Health(ctx context.Context) error
}

// Handler contains all HTTP handlers
type Handler struct {
	analysisSvc AnalysisProvider
}

// NewHandler creates a new handler
func NewHandler(analysisSvc AnalysisProvider) *Handler {
	return &Handler{analysisSvc: analysisSvc}
}

// cityPattern allows letters (including accented), spaces, hyphens,
// apostrophes, commas and periods, up to 80 characters.
var cityPattern = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s\-',\.]{1,80}$`)

// sanitizeCity validates and normalizes a user-supplied city name.
// Returns "" when the input is unacceptable.
func sanitizeCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" || !cityPattern.MatchString(city) {
		return ""
	}
	return city
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status := "healthy"
	if err := h.analysisSvc.Health(c.Context()); err != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"service": "weatherintel-backend",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// GetWeather runs the full per-city analysis: weather payload, ML analysis
// and risk report.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city := sanitizeCity(c.Query("city"))
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid city name. Please use letters only.",
			"code":  "INVALID_INPUT",
		})
	}

	result, err := h.analysisSvc.AnalyzeCity(c.Context(), city)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "City \"" + city + "\" not found or weather data unavailable.",
				"code":  "CITY_NOT_FOUND",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to analyze weather data")
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   result,
		"meta": fiber.Map{
			"city":       city,
			"fetched_at": result.Weather.FetchedAt,
		},
	})
}

// GetHistory returns persisted analysis snapshots for a city
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	city := sanitizeCity(c.Query("city"))
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid city name. Please use letters only.",
			"code":  "INVALID_INPUT",
		})
	}

	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	data, err := h.analysisSvc.GetHistory(c.Context(), city, hours)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch analysis history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}
