// Package blog provides the public and admin blog post endpoints.
package blog

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/controller/blogpost"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/validation"
	"github.com/GoFolio/GoFolio/internal/web/handler"
)

const (
	// PublicPath is the public blog read endpoint.
	PublicPath = handler.APIPath + "/blog"

	// AdminPath is the admin blog CRUD endpoint.
	AdminPath = handler.AdminAPIPath + "/blog"
)

// Service is the blog handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the blog handler.
var Handler = Service{}

// postRequest is the JSON body accepted by POST and PUT.
type postRequest struct {
	Title         string `json:"title"          validate:"required"`
	Content       string `json:"content"        validate:"required"`
	Excerpt       string `json:"excerpt"        validate:"required"`
	Slug          string `json:"slug"`
	FeaturedImage string `json:"featured_image" validate:"omitempty,url"`
	Published     bool   `json:"published"`
}

// Init initializes the blog handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// public routes
	app.Route(PublicPath, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.ListPublished)
		router.Get("/:slug", s.GetBySlug)
	})

	// admin routes (token middleware guards the prefix)
	app.Route(AdminPath, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.ListAll)
		router.Post(handler.RouterRootPath, s.Create)
		router.Get("/:id", s.GetByID)
		router.Put("/:id", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// ListPublished returns published posts only, newest first.
func (s *Service) ListPublished(c *fiber.Ctx) error {
	posts, err := blogpost.GetPublished(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch published blog posts")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch blog posts"})
	}

	return c.JSON(posts)
}

// GetBySlug returns a single published post looked up by slug.
func (s *Service) GetBySlug(c *fiber.Ctx) error {
	post, err := blogpost.GetBySlug(s.db, c.Params("slug"))
	if err != nil {
		if errors.Is(err, blogpost.ErrNotFound) || errors.Is(err, blogpost.ErrSlugEmpty) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Blog post not found"})
		}

		log.Error().Err(err).Str("slug", c.Params("slug")).Msg("failed to fetch blog post by slug")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch blog post"})
	}

	return c.JSON(post)
}

// ListAll returns every post, drafts included.
func (s *Service) ListAll(c *fiber.Ctx) error {
	posts, err := blogpost.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch blog posts")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch blog posts"})
	}

	return c.JSON(posts)
}

// GetByID returns a single post by ID, drafts included.
func (s *Service) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid blog post ID"})
	}

	post, err := blogpost.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, blogpost.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Blog post not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to fetch blog post")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch blog post"})
	}

	return c.JSON(post)
}

// Create validates the body and inserts a new post.
func (s *Service) Create(c *fiber.Ctx) error {
	req, errResp := s.parseAndValidate(c)
	if errResp != nil {
		return errResp
	}

	post := &models.BlogPost{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Slug:          postSlug(req),
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	}

	if err := blogpost.Create(s.db, post); err != nil {
		log.Error().Err(err).Msg("failed to create blog post")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create blog post"})
	}

	log.Info().Uint64("id", post.ID).Str("slug", post.Slug).Msg("blog post created")

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "Blog post created successfully"})
}

// Update validates the body and overwrites every content field of the post.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid blog post ID"})
	}

	req, errResp := s.parseAndValidate(c)
	if errResp != nil {
		return errResp
	}

	slug := postSlug(req)
	patch := blogpost.Patch{
		Title:         &req.Title,
		Content:       &req.Content,
		Excerpt:       &req.Excerpt,
		Slug:          &slug,
		FeaturedImage: &req.FeaturedImage,
		Published:     &req.Published,
	}

	if err := blogpost.Update(s.db, id, patch); err != nil {
		if errors.Is(err, blogpost.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Blog post not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update blog post")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update blog post"})
	}

	return c.JSON(fiber.Map{"message": "Blog post updated successfully"})
}

// Delete removes a post by ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid blog post ID"})
	}

	if err := blogpost.Delete(s.db, id); err != nil {
		if errors.Is(err, blogpost.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Blog post not found"})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete blog post")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete blog post"})
	}

	return c.JSON(fiber.Map{"message": "Blog post deleted successfully"})
}

// parseAndValidate decodes the JSON body and runs the struct validation.
// A non-nil return value is the error response already sent to the client.
func (s *Service) parseAndValidate(c *fiber.Ctx) (*postRequest, error) {
	req := new(postRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, ve := range validationErrors {
				if ve.Tag() == "required" {
					return nil, c.Status(fiber.StatusBadRequest).
						JSON(fiber.Map{"error": "Title, content, and excerpt are required"})
				}
			}

			return nil, c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Invalid featured image URL"})
		}

		return nil, c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid request body"})
	}

	return req, nil
}

// postSlug returns the request slug, deriving one from the title when absent.
func postSlug(req *postRequest) string {
	if req.Slug != "" {
		return req.Slug
	}

	return validation.Slugify(req.Title)
}

func parseID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}
