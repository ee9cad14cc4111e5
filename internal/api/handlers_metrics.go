package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mcycle/internal/services"
)

func (handler *Handler) ListMetrics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	metrics, err := handler.metricSvc.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to fetch health metrics.")
	}
	return c.JSON(fiber.Map{"metrics": metrics})
}

func (handler *Handler) CreateMetric(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	payload := metricPayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	metric, err := handler.metricSvc.Create(user.ID, services.MetricInput{
		RecordedDate: parseOptionalDate(payload.RecordedDate),
		WeightKg:     payload.WeightKg,
		HeightCm:     payload.HeightCm,
		WaistCm:      payload.WaistCm,
		HipCm:        payload.HipCm,
		WristCm:      payload.WristCm,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to log health metrics.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"metric": metric})
}
