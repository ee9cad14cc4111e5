package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type AppOptions struct {
	CORSOrigins []string
	AccessLog   bool
}

// NewApp assembles the fiber application with the standard middleware
// stack and every route registered.
func NewApp(handler *Handler, options AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mCycle",
		DisableStartupMessage: true,
		ErrorHandler:          handler.errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if options.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
			Output: handler.logger.Writer(),
		}))
	}
	app.Use(handler.telemetry.Middleware)
	app.Use(compress.New())
	if len(options.CORSOrigins) > 0 {
		origins := strings.Join(options.CORSOrigins, ",")
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowCredentials: !strings.Contains(origins, "*"),
		}))
	}

	RegisterRoutes(app, handler)
	return app
}

func (handler *Handler) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Server error."
	if fiberErr, ok := err.(*fiber.Error); ok {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	if status >= fiber.StatusInternalServerError {
		handler.logger.WithField("path", c.Path()).WithError(err).Error("request failed")
	}
	return apiError(c, status, message)
}
