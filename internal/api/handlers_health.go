package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"env":       handler.environment,
		"timestamp": handler.now().UTC().Format(time.RFC3339),
	})
}
