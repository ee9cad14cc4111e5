package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mcycle/internal/models"
	"github.com/terraincognita07/mcycle/internal/services"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	payload := signupPayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user, err := handler.authService.Register(services.RegisterInput{
		Name:        payload.Name,
		Email:       payload.Email,
		Password:    payload.Password,
		DateOfBirth: parseOptionalDate(payload.DateOfBirth),
	})
	if err != nil {
		return handler.respondServiceError(c, err, "Server error during signup.")
	}

	return handler.respondWithToken(c, fiber.StatusCreated, &user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginPayload{}
	if message := handler.bindJSON(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, "Email and password are required.")
	}

	limiterKey := loginLimiterKey(c, payload.Email)
	now := handler.now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}

	user, err := handler.authService.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if status, ok := serviceErrorStatus(err); ok && status == fiber.StatusUnauthorized {
			handler.loginLimiter.recordFailure(limiterKey, now)
		}
		return handler.respondServiceError(c, err, "Server error during login.")
	}
	handler.loginLimiter.reset(limiterKey)

	return handler.respondWithToken(c, fiber.StatusOK, &user)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (handler *Handler) respondWithToken(c *fiber.Ctx, status int, user *models.User) error {
	token, err := handler.buildToken(user)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to create session.")
	}
	return c.Status(status).JSON(fiber.Map{"token": token, "user": user})
}
