package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/metrics", handler.telemetry.Handler())

	api := app.Group("/api")
	api.Get("/health", handler.Health)

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Put("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	metrics := api.Group("/metrics", handler.AuthRequired)
	metrics.Get("", handler.ListMetrics)
	metrics.Post("", handler.CreateMetric)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.ListLogs)
	logs.Post("", handler.CreateLog)
	logs.Put("/:id", handler.UpdateLog)

	insights := api.Group("/insights", handler.AuthRequired)
	insights.Get("/summary", handler.InsightsSummary)

	app.Use(handler.NotFound)
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "Not found.")
}
