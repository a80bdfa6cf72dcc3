package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"landing_backend/internal/apperr"
	"landing_backend/internal/service"
	"landing_backend/pkg/logging"
)

// envelope builds the failure body for one family of endpoints.
type envelope func(message string) fiber.Map

func statusFalse(message string) fiber.Map {
	return fiber.Map{"status": false, "message": message}
}

func statusError(message string) fiber.Map {
	return fiber.Map{"status": "error", "message": message}
}

func successFalse(message string) fiber.Map {
	return fiber.Map{"success": false, "message": message}
}

// fail writes err with the status of its class. Infrastructure errors are logged
// and replaced by fallback.
func fail(c *fiber.Ctx, log *logrus.Logger, err error, env envelope, fallback string) error {
	status := apperr.HTTPStatus(err)
	if !apperr.Exposable(err) {
		logging.FromCtx(log, c).WithError(err).Error(fallback)
		return c.Status(status).JSON(env(fallback))
	}

	body := env(apperr.Message(err))
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		body["errors"] = verr.Fields
	}
	return c.Status(status).JSON(body)
}
