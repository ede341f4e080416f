package server

import (
	"errors"

	"datadiff/core/failure"
	"datadiff/core/logger"
	"datadiff/core/middleware/rayid"
	"datadiff/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// New creates the Fiber application with the global middleware chain:
// RayID, request logging, then CORS.
func New(cfg Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		BodyLimit:             cfg.BodyLimit(),
		ErrorHandler:          ErrorHandler(log),
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origins(),
		AllowMethods: "GET,POST,OPTIONS",
	}))

	return app
}

// SendError writes err as {"error", "kind"} with the status its kind maps to.
func SendError(c *fiber.Ctx, err error) error {
	return c.Status(failure.StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  failure.KindOf(err),
	})
}

// ErrorHandler answers errors returned by handlers that did not respond themselves.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		logger.WithRayID(log, c).Error("Unhandled error", zap.Error(err))
		return SendError(c, err)
	}
}
