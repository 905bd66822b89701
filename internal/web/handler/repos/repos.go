// Package repos provides the public and admin repository endpoints.
package repos

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/controller/repository"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/validation"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

const (
	// PublicPath is the public repository listing endpoint.
	PublicPath = handler.APIPath + "/repos"

	// AdminPath is the admin repository CRUD endpoint.
	AdminPath = handler.AdminAPIPath + "/repos"
)

// Service is the repository handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the repository handler.
var Handler = Service{}

// repoRequest is the JSON body accepted by POST and PUT.
type repoRequest struct {
	Title        string `json:"title"        validate:"required"`
	Description  string `json:"description"  validate:"required"`
	GithubURL    string `json:"github_url"   validate:"required,githuburl"`
	DemoURL      string `json:"demo_url"     validate:"omitempty,url"`
	Thumbnail    string `json:"thumbnail"    validate:"omitempty,url"`
	Technologies string `json:"technologies"`
	Featured     bool   `json:"featured"`
}

// Init initializes the repository handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	if err := s.validator.RegisterValidation("githuburl", func(fl validator.FieldLevel) bool {
		return validation.IsValidGithubURL(fl.Field().String())
	}); err != nil {
		return err //nolint:wrapcheck
	}

	app.Get(PublicPath, s.List)

	app.Route(AdminPath, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Create)
		router.Get("/:id", s.GetByID)
		router.Put("/:id", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all repositories, newest first. Served on both the public
// and the admin path; repositories have no draft state.
func (s *Service) List(c *fiber.Ctx) error {
	repos, err := repository.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch repositories")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch repositories"})
	}

	return c.JSON(repos)
}

// GetByID returns a single repository.
func (s *Service) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid repository ID"})
	}

	repo, err := repository.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Repository not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to fetch repository")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch repository"})
	}

	return c.JSON(repo)
}

// Create validates the body and inserts a new repository.
func (s *Service) Create(c *fiber.Ctx) error {
	req, errResp := s.parseAndValidate(c)
	if errResp != nil {
		return errResp
	}

	repo := &models.Repository{
		Title:        req.Title,
		Description:  req.Description,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		Thumbnail:    req.Thumbnail,
		Technologies: req.Technologies,
		Featured:     req.Featured,
	}

	if err := repository.Create(s.db, repo); err != nil {
		log.Error().Err(err).Msg("failed to create repository")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create repository"})
	}

	log.Info().Uint64("id", repo.ID).Str("github_url", repo.GithubURL).Msg("repository created")

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "Repository created successfully"})
}

// Update validates the body and overwrites every content field of the repository.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid repository ID"})
	}

	req, errResp := s.parseAndValidate(c)
	if errResp != nil {
		return errResp
	}

	technologies := req.Technologies
	if technologies == "" {
		technologies = models.DefaultTechnologies
	}

	patch := repository.Patch{
		Title:        &req.Title,
		Description:  &req.Description,
		GithubURL:    &req.GithubURL,
		DemoURL:      &req.DemoURL,
		Thumbnail:    &req.Thumbnail,
		Technologies: &technologies,
		Featured:     &req.Featured,
	}

	if err := repository.Update(s.db, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Repository not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update repository")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update repository"})
	}

	return c.JSON(fiber.Map{"message": "Repository updated successfully"})
}

// Delete removes a repository by ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid repository ID"})
	}

	if err := repository.Delete(s.db, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Repository not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete repository")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete repository"})
	}

	return c.JSON(fiber.Map{"message": "Repository deleted successfully"})
}

func (s *Service) parseAndValidate(c *fiber.Ctx) (*repoRequest, error) {
	req := new(repoRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, ve := range validationErrors {
				switch ve.Tag() {
				case "required":
					return nil, c.Status(fiber.StatusBadRequest).
						JSON(fiber.Map{"error": "Title, description, and GitHub URL are required"})
				case "githuburl":
					return nil, c.Status(fiber.StatusBadRequest).
						JSON(fiber.Map{"error": "Invalid GitHub URL format"})
				}
			}

			return nil, c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid URL format"})
		}

		return nil, c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid request body"})
	}

	return req, nil
}

func parseID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}
