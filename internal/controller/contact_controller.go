package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"landing_backend/internal/middleware"
	"landing_backend/internal/service"
)

type ContactInput struct {
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type ContactController struct {
	contact *service.ContactService
	log     *logrus.Logger
}

func NewContactController(contact *service.ContactService, log *logrus.Logger) *ContactController {
	return &ContactController{contact: contact, log: log}
}

// SubmitContact forwards the signed-in customer's message to support. Must run
// behind middleware.RequireSession.
func (h *ContactController) SubmitContact(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(successFalse("Invalid input"))
	}

	if err := h.contact.Submit(c.UserContext(), middleware.SessionUser(c), input.Subject, input.Message); err != nil {
		return fail(c, h.log, err, successFalse, "Could not send your message")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Your message has been sent to support",
	})
}
