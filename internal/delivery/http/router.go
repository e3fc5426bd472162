package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, analysisSvc AnalysisProvider) {
	handler := NewHandler(analysisSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Per-city analysis, rate limited per client
		api.Get("/weather", limiter.New(limiter.Config{
			Max:        30,
			Expiration: time.Minute,
		}), handler.GetWeather)

		// Persisted analysis history
		api.Get("/history", handler.GetHistory)
	}
}
