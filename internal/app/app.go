// Package app assembles the fiber application from already constructed
// dependencies. cmd/api owns process startup and shutdown.
package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"

	"landing_backend/internal/controller"
	"landing_backend/internal/middleware"
	"landing_backend/internal/repository"
	"landing_backend/internal/service"
	"landing_backend/pkg/config"
	"landing_backend/pkg/logging"
	"landing_backend/pkg/utils/storage"
)

type Deps struct {
	Config   *config.Config
	Log      *logrus.Logger
	Store    *repository.Store
	Files    storage.FileStorage
	Notifier service.SupportNotifier
	Sessions *session.Store
}

func New(d Deps) *fiber.App {
	cfg := d.Config

	app := fiber.New(fiber.Config{
		AppName:      "landing_backend",
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1024*1024,
		ErrorHandler: errorHandler(d.Log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
		Output: d.Log.WriterLevel(logrus.InfoLevel),
	}))
	app.Use(cors.New())

	setupRoutes(app, d)

	app.Static("/", cfg.Server.PublicDir)

	return app
}

func setupRoutes(app *fiber.App, d Deps) {
	validator := service.NewValidator()

	content := controller.NewContentController(
		service.NewContentService(d.Store.Links, d.Store.News), d.Log)
	subscribe := controller.NewSubscribeController(
		service.NewSubscriptionService(d.Store.Subscriptions, validator), d.Log)
	registration := controller.NewRegistrationController(
		service.NewRegistrationService(d.Store.Registrations, d.Files, validator, d.Config.Upload.MaxBytes, d.Log), d.Log)
	contact := controller.NewContactController(
		service.NewContactService(d.Store.Customers, d.Notifier, validator), d.Log)

	requireSession := middleware.RequireSession(d.Sessions, "/")

	app.Get("/healthz", controller.Health(d.Store.Ping, d.Log))

	app.Get("/fetchLinks", content.FetchLinks)
	app.Get("/getNews", content.GetNews)
	app.Post("/subscribe", subscribe.Subscribe)
	app.Post("/premiumRegistration", registration.PremiumRegistration)

	// Session routes
	app.Post("/submit-contact", requireSession, contact.SubmitContact)
	app.Get("/dashboard", requireSession, controller.SendPage(d.Config.Server.DashboardPage))
}

// errorHandler keeps fiber's own errors (404, 405, 413) and hides everything else
// behind a generic 500.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"success": false,
				"message": fe.Message,
			})
		}

		logging.FromCtx(log, c).WithError(err).Error("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
}
