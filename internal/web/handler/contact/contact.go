// Package contact provides the public contact form endpoint and the admin
// message inbox. Submissions are persisted to the contacts table; the admin
// can list and delete them.
package contact

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	contactctl "github.com/GoFolio/GoFolio/internal/db/controller/contact"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/validation"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

const (
	// PublicPath is the public contact form endpoint.
	PublicPath = handler.APIPath + "/contact"

	// AdminPath is the admin message inbox endpoint.
	AdminPath = handler.AdminAPIPath + "/contacts"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the contact handler.
var Handler = Service{}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Post(PublicPath, s.Submit)

	app.Route(AdminPath, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// Submit validates and stores a contact form submission.
func (s *Service) Submit(c *fiber.Ctx) error {
	req := new(contactRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Name, email, and message are required"})
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Name, email, and message are required"})
	}

	if !validation.IsValidEmail(req.Email) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid email format"})
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := contactctl.Create(s.db, contact); err != nil {
		log.Error().Err(err).Msg("failed to save contact form submission")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to send message. Please try again."})
	}

	log.Info().Uint64("id", contact.ID).Str("email", contact.Email).Msg("contact message received")

	return c.JSON(fiber.Map{"message": "Message sent successfully!"})
}

// List returns all received messages, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	contacts, err := contactctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch contact messages")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	return c.JSON(contacts)
}

// Delete removes a message by ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid contact ID"})
	}

	if err := contactctl.Delete(s.db, id); err != nil {
		if errors.Is(err, contactctl.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Message not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete contact message")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete message. Please try again."})
	}

	return c.JSON(fiber.Map{"message": "Message deleted successfully"})
}
