// Package health provides the database health check endpoint.
package health

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

// Path is the database health check endpoint.
const Path = handler.APIPath + "/health/db"

// Service is the health handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDMsg)
	}

	s.db = gdb
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get pings the store and reports its version. Failure detail is logged,
// never returned to the caller.
func (s *Service) Get(c *fiber.Ctx) error {
	version, err := db.Ping(s.db)
	if err != nil {
		log.Error().Err(err).Msg("database health check failed")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"status": "error", "error": "store unreachable"})
	}

	return c.JSON(fiber.Map{"status": "ok", "serverVersion": version})
}
