package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mcycle/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceErrorStatus maps validation and lookup sentinels to client errors.
// Anything else is a server fault.
func serviceErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, services.ErrAuthInputInvalid),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrStartDateRequired),
		errors.Is(err, services.ErrInvalidCycleRange),
		errors.Is(err, services.ErrRecordedDateRequired),
		errors.Is(err, services.ErrInvalidMeasurement),
		errors.Is(err, services.ErrLogDateRequired),
		errors.Is(err, services.ErrInvalidMood),
		errors.Is(err, services.ErrInvalidPainLevel),
		errors.Is(err, services.ErrInvalidAcneLevel),
		errors.Is(err, services.ErrInvalidHairGrowth),
		errors.Is(err, services.ErrInvalidExercise),
		errors.Is(err, services.ErrInvalidLogMonth):
		return fiber.StatusBadRequest, true
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, true
	case errors.Is(err, services.ErrCycleNotFound),
		errors.Is(err, services.ErrDailyLogNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict, true
	default:
		return 0, false
	}
}

var clientMessages = map[error]string{
	services.ErrAuthInputInvalid:     "Name, email, and password are required.",
	services.ErrWeakPassword:         "Password must be at least 8 characters and include upper-case, lower-case and a digit.",
	services.ErrInvalidCredentials:   "Invalid email or password.",
	services.ErrEmailTaken:           "Email already registered.",
	services.ErrUserNotFound:         "User not found.",
	services.ErrStartDateRequired:    "start_date is required.",
	services.ErrInvalidCycleRange:    "end_date must not be before start_date.",
	services.ErrCycleNotFound:        "Cycle not found.",
	services.ErrRecordedDateRequired: "recorded_date is required.",
	services.ErrInvalidMeasurement:   "Measurements must not be negative.",
	services.ErrLogDateRequired:      "log_date is required.",
	services.ErrInvalidMood:          "mood must be one of happy, calm, anxious, sad, irritable.",
	services.ErrInvalidPainLevel:     "pain_level must be between 0 and 10.",
	services.ErrInvalidAcneLevel:     "acne_level must be between 0 and 5.",
	services.ErrInvalidHairGrowth:    "hair_growth_level must be between 0 and 5.",
	services.ErrInvalidExercise:      "exercise_minutes must not be negative.",
	services.ErrInvalidLogMonth:      "month and year must describe a valid calendar month.",
	services.ErrDailyLogNotFound:     "Log not found.",
}

// respondServiceError writes the client-facing form of err. Unknown errors
// are logged and reported with fallback.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	if status, ok := serviceErrorStatus(err); ok {
		for sentinel, message := range clientMessages {
			if errors.Is(err, sentinel) {
				return apiError(c, status, message)
			}
		}
		return apiError(c, status, err.Error())
	}

	handler.logger.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).WithError(err).Error(fallback)
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
