package handler

import (
	"homework-grader/internal/middleware"
	"homework-grader/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything RegisterRoutes wires
type Handlers struct {
	Quality    *QualityHandler
	Practice   *PracticeHandler
	Health     *HealthHandler
	Verifier   service.TokenVerifier
	Validation *middleware.ValidationMiddleware
}

// RegisterRoutes mounts the API under /api. Practice generation and stored
// reports require an access token; the stateless quality endpoints do not.
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.Health)

	api := app.Group("/api")

	exercises := api.Group("/exercises")
	exercises.Post("/dedup", h.Quality.RemoveDuplicates)
	exercises.Post("/difficulty", h.Quality.EvaluateDifficulty)
	exercises.Post("/quality-report", h.Quality.GenerateReport)

	protected := middleware.Protected(h.Verifier)
	api.Get("/quality-reports/:id", protected, h.Validation.ValidateReportID(), h.Quality.GetReport)
	api.Post("/practice/generate", protected, h.Practice.GeneratePractice)
}
