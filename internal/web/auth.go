package web

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

const bearerPrefix = "Bearer "

// TokenAuth is a Fiber middleware guarding the admin API prefix with the
// configured bearer token. Public routes pass through untouched.
func TokenAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Path(), handler.AdminAPIPath) {
			return c.Next()
		}

		// no token configured means the admin API stays closed
		if cfg.Webserver.AdminToken == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Unauthorized"})
		}

		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authz, bearerPrefix) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Unauthorized"})
		}

		token := strings.TrimPrefix(authz, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Webserver.AdminToken)) != 1 {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Unauthorized"})
		}

		return c.Next()
	}
}
