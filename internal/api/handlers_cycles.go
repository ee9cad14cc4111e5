package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mcycle/internal/services"
)

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	cycles, err := handler.cycleService.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to fetch cycles.")
	}
	return c.JSON(fiber.Map{"cycles": cycles})
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	payload := cyclePayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	cycle, err := handler.cycleService.Create(user.ID, services.CycleInput{
		StartDate: parseOptionalDate(payload.StartDate),
		EndDate:   parseOptionalDate(payload.EndDate),
		Notes:     payload.Notes,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to create cycle.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"cycle": cycle})
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}
	cycleID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "Cycle not found.")
	}

	payload := cyclePayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	cycle, err := handler.cycleService.Update(user.ID, cycleID, services.CycleUpdate{
		StartDate:  parseOptionalDate(payload.StartDate),
		EndDate:    parseOptionalDate(payload.EndDate),
		EndDateSet: hasJSONField(c.Body(), "end_date"),
		Notes:      payload.Notes,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to update cycle.")
	}
	return c.JSON(fiber.Map{"cycle": cycle})
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}
	cycleID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "Cycle not found.")
	}

	if err := handler.cycleService.Delete(user.ID, cycleID); err != nil {
		return handler.respondServiceError(c, err, "Failed to delete cycle.")
	}
	return c.JSON(fiber.Map{"message": "Cycle deleted."})
}
