package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

const invalidBodyMessage = "Invalid request body."

type signupPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,max=128"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

type loginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type cyclePayload struct {
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}

type metricPayload struct {
	RecordedDate *string  `json:"recorded_date" validate:"omitempty,datetime=2006-01-02"`
	WeightKg     *float64 `json:"weight_kg" validate:"omitempty,gte=0,lte=500"`
	HeightCm     *float64 `json:"height_cm" validate:"omitempty,gte=0,lte=300"`
	WaistCm      *float64 `json:"waist_cm" validate:"omitempty,gte=0,lte=300"`
	HipCm        *float64 `json:"hip_cm" validate:"omitempty,gte=0,lte=300"`
	WristCm      *float64 `json:"wrist_cm" validate:"omitempty,gte=0,lte=100"`
}

type dailyLogPayload struct {
	LogDate         *string `json:"log_date" validate:"omitempty,datetime=2006-01-02"`
	Mood            *string `json:"mood" validate:"omitempty,max=20"`
	PainLevel       *int    `json:"pain_level"`
	AcneLevel       *int    `json:"acne_level"`
	HairGrowthLevel *int    `json:"hair_growth_level"`
	ExerciseMinutes *int    `json:"exercise_minutes"`
	ExerciseType    *string `json:"exercise_type" validate:"omitempty,max=100"`
	Medication      *string `json:"medication" validate:"omitempty,max=500"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// bindJSON decodes and validates the body. It returns a client-facing
// message, empty when the payload is acceptable.
func (handler *Handler) bindJSON(c *fiber.Ctx, payload any) string {
	if err := json.Unmarshal(c.Body(), payload); err != nil {
		return invalidBodyMessage
	}
	if err := handler.validate.Struct(payload); err != nil {
		return validationMessage(err)
	}
	return ""
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return invalidBodyMessage
	}

	field := fieldErrors[0]
	switch field.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format.", field.Field())
	case "gte":
		return fmt.Sprintf("%s must not be negative.", field.Field())
	case "max", "lte":
		return fmt.Sprintf("%s is too large.", field.Field())
	default:
		return fmt.Sprintf("%s is invalid.", field.Field())
	}
}

// hasJSONField reports whether the body names the key at all, so an explicit
// null can be told apart from an omitted field.
func hasJSONField(body []byte, key string) bool {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	_, ok := fields[key]
	return ok
}

func parseOptionalDate(raw *string) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(*raw), time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}
