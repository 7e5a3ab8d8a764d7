package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/citizen-connect/grievance-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Grievances *handlers.GrievancesHandler
}

// RegisterRoutes wires HTTP routes. The catch-all 404 must be registered
// after every real route.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)

	grievances := app.Group("/grievances")
	grievances.Post("/", cfg.Grievances.Create)
	grievances.Get("/", cfg.Grievances.List)
	grievances.Get("/:id", cfg.Grievances.Get)
	grievances.Put("/:id", cfg.Grievances.Update)
	grievances.Delete("/:id", cfg.Grievances.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Route not found"})
	})
}
