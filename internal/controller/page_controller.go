package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SendPage serves a single file, e.g. the dashboard behind the session gate.
func SendPage(path string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}

// Health reports whether the store answers a ping within two seconds.
func Health(ping func(ctx context.Context) error, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			log.WithError(err).Warn("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
