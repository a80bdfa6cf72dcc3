package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"landing_backend/internal/service"
)

type SubscribeInput struct {
	Email string `json:"email" form:"email"`
}

type SubscribeController struct {
	subscriptions *service.SubscriptionService
	log           *logrus.Logger
}

func NewSubscribeController(subscriptions *service.SubscriptionService, log *logrus.Logger) *SubscribeController {
	return &SubscribeController{subscriptions: subscriptions, log: log}
}

// Subscribe accepts a JSON or form body with an email address.
func (h *SubscribeController) Subscribe(c *fiber.Ctx) error {
	var input SubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(statusError("Invalid input format"))
	}

	if _, err := h.subscriptions.Subscribe(c.UserContext(), input.Email); err != nil {
		return fail(c, h.log, err, statusError, "Internal server error.")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Subscription successful.",
	})
}
