package fiber

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFolio/GoFolio/internal/logger"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/checkalive", func(c *fiber.Ctx) error {
		return c.SendString("alive")
	})

	return app
}

func TestAccessLogPassesRequestThrough(t *testing.T) {
	app := newApp(Config{Config: logger.Log{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAccessLogNextSkips(t *testing.T) {
	skipped := false
	app := newApp(Config{
		Config: logger.Log{},
		Next: func(_ *fiber.Ctx) bool {
			skipped = true
			return true
		},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, skipped)
}

func TestAccessLogCheckAliveNotLogged(t *testing.T) {
	app := newApp(Config{
		Config:        logger.Log{DisableCheckAlive: true},
		CheckAliveURI: "/checkalive",
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/checkalive", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
