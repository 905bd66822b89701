// Package settings provides the admin profile settings endpoints.
package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	settingsctl "github.com/GoFolio/GoFolio/internal/db/controller/settings"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

// Path is the admin settings endpoint.
const Path = handler.AdminAPIPath + "/settings"

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the settings handler.
var Handler = Service{}

// settingsRequest is the whole-record JSON body accepted by PUT. Absent
// booleans decode to false, which keeps the flags never-null invariant.
type settingsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Website  string `json:"website"  validate:"omitempty,url"`

	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	WeeklyDigest       bool `json:"weekly_digest"`
	SecurityAlerts     bool `json:"security_alerts"`
}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Put(handler.RouterRootPath, s.Put)
	})

	return nil
}

// Get returns the settings record, or an empty object before the first save.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := settingsctl.Get(s.db)
	if err != nil {
		if errors.Is(err, settingsctl.ErrNotFound) {
			return c.JSON(fiber.Map{})
		}

		log.Error().Err(err).Msg("failed to fetch admin settings")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(settings)
}

// Put upserts the whole settings record.
func (s *Service) Put(c *fiber.Ctx) error {
	req := new(settingsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid " + validationErrors[0].Field() + " format"})
		}

		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid request body"})
	}

	settings := &models.AdminSettings{
		Name:               req.Name,
		Email:              req.Email,
		Bio:                req.Bio,
		Location:           req.Location,
		Website:            req.Website,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		WeeklyDigest:       req.WeeklyDigest,
		SecurityAlerts:     req.SecurityAlerts,
	}

	if err := settingsctl.Upsert(s.db, settings); err != nil {
		log.Error().Err(err).Msg("failed to save admin settings")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update settings"})
	}

	log.Info().Msg("admin settings saved")

	return c.JSON(fiber.Map{"ok": true})
}
