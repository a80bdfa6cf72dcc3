package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"landing_backend/internal/service"
)

type RegistrationController struct {
	registrations *service.RegistrationService
	log           *logrus.Logger
}

func NewRegistrationController(registrations *service.RegistrationService, log *logrus.Logger) *RegistrationController {
	return &RegistrationController{registrations: registrations, log: log}
}

// PremiumRegistration takes the multipart registration form together with the
// payment screenshot.
func (h *RegistrationController) PremiumRegistration(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(successFalse("Invalid form data"))
	}

	fields := make(map[string]string, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	var upload *service.Upload
	if files := form.File[service.ScreenshotField]; len(files) > 0 {
		file := files[0]
		content, err := file.Open()
		if err != nil {
			return fail(c, h.log, err, successFalse, "Could not read uploaded file")
		}
		defer content.Close()

		upload = &service.Upload{
			Name:        file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Content:     content,
		}
	}

	id, err := h.registrations.Register(c.UserContext(), fields, upload)
	if err != nil {
		return fail(c, h.log, err, successFalse, "Could not complete registration")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Registration submitted successfully",
		"data": fiber.Map{
			"registrationId": id,
		},
	})
}
