package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"landing_backend/internal/service"
)

type ContentController struct {
	content *service.ContentService
	log     *logrus.Logger
}

func NewContentController(content *service.ContentService, log *logrus.Logger) *ContentController {
	return &ContentController{content: content, log: log}
}

// FetchLinks returns the WhatsApp and Telegram community links.
func (h *ContentController) FetchLinks(c *fiber.Ctx) error {
	links, err := h.content.Links(c.UserContext())
	if err != nil {
		return fail(c, h.log, err, statusFalse, "Internal server error")
	}
	return c.JSON(links)
}

// GetNews returns the latest news items. ?limit overrides the default page size.
func (h *ContentController) GetNews(c *fiber.Ctx) error {
	news, err := h.content.LatestNews(c.UserContext(), c.QueryInt("limit", service.DefaultNewsLimit))
	if err != nil {
		return fail(c, h.log, err, statusFalse, "Internal server error")
	}
	return c.JSON(fiber.Map{
		"status": true,
		"news":   news,
	})
}
