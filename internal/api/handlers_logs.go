package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mcycle/internal/models"
	"github.com/terraincognita07/mcycle/internal/services"
)

// ListLogs returns one calendar month when both month and year are given,
// otherwise the most recent entries.
func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	var (
		logs []models.DailyLog
		err  error
	)
	rawMonth, rawYear := c.Query("month"), c.Query("year")
	if rawMonth != "" && rawYear != "" {
		month, monthErr := strconv.Atoi(rawMonth)
		year, yearErr := strconv.Atoi(rawYear)
		if monthErr != nil || yearErr != nil {
			return handler.respondServiceError(c, services.ErrInvalidLogMonth, "Failed to fetch daily logs.")
		}
		logs, err = handler.logService.ListMonth(user.ID, year, month)
	} else {
		logs, err = handler.logService.ListRecent(user.ID)
	}
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to fetch daily logs.")
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	payload := dailyLogPayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, err := handler.logService.Create(user.ID, payload.toInput())
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to create daily log.")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": entry})
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusNotFound, "Log not found.")
	}

	payload := dailyLogPayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, err := handler.logService.Update(user.ID, logID, payload.toInput())
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to update daily log.")
	}
	return c.JSON(fiber.Map{"log": entry})
}

func (payload dailyLogPayload) toInput() services.DailyLogInput {
	return services.DailyLogInput{
		LogDate:         parseOptionalDate(payload.LogDate),
		Mood:            payload.Mood,
		PainLevel:       payload.PainLevel,
		AcneLevel:       payload.AcneLevel,
		HairGrowthLevel: payload.HairGrowthLevel,
		ExerciseMinutes: payload.ExerciseMinutes,
		ExerciseType:    payload.ExerciseType,
		Medication:      payload.Medication,
		Notes:           payload.Notes,
	}
}
