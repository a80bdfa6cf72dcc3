package logging

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "development").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("nonsense", "development").GetLevel())
	_, isJSON := New("info", "production").Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestFromCtxCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "production")
	logger.SetOutput(&buf)

	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		FromCtx(logger, c).Info("pong")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pong", line["message"])
	assert.Equal(t, "/ping", line["path"])
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), line["request_id"])
}
