package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	// Health check routes
	deps.HealthHandler.RegisterRoutes(app)

	// API documentation
	deps.DocsHandler.RegisterRoutes(app)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes
	api := app.Group("/api/v1")
	if deps.RateLimitMiddleware != nil {
		api.Use(deps.RateLimitMiddleware.Handler())
	}

	deps.PuzzlesHandler.RegisterRoutes(api)
	deps.SolvesHandler.RegisterRoutes(api)
	deps.ReplayHandler.RegisterRoutes(api)
}
