package logging

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. Production output is JSON, everything else is text.
func New(level, env string) *logrus.Logger {
	logger := logrus.New()
	if env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// FromCtx returns an entry tagged with the request id set by the requestid middleware.
func FromCtx(logger *logrus.Logger, c *fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	})
}
