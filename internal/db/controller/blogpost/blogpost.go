// Package blogpost provides CRUD operations for blog posts.
package blogpost

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

const (
	orderNewestFirst = "created_at DESC"
)

var (
	// ErrNotFound is returned when a blog post is not found.
	ErrNotFound = errors.New("blog post not found")
	// ErrSlugEmpty is returned when looking up a post with an empty slug.
	ErrSlugEmpty = errors.New("blog post slug cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Patch enumerates the updatable fields of a blog post. Nil fields are
// left untouched by Update.
type Patch struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Slug          *string
	FeaturedImage *string
	Published     *bool
}

// columns compiles the patch into a parameterized column map.
func (p Patch) columns() map[string]any {
	cols := make(map[string]any)

	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	if p.Excerpt != nil {
		cols["excerpt"] = *p.Excerpt
	}
	if p.Slug != nil {
		cols["slug"] = *p.Slug
	}
	if p.FeaturedImage != nil {
		cols["featured_image"] = *p.FeaturedImage
	}
	if p.Published != nil {
		cols["published"] = *p.Published
	}

	return cols
}

// GetAll retrieves every blog post, drafts included, newest first.
func GetAll(db *gorm.DB) ([]models.BlogPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var posts []models.BlogPost
	result := db.Order(orderNewestFirst).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// GetPublished retrieves published posts only, newest first.
func GetPublished(db *gorm.DB) ([]models.BlogPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var posts []models.BlogPost
	result := db.Where("published = ?", true).Order(orderNewestFirst).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// GetByID retrieves a blog post by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.BlogPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var post models.BlogPost
	result := db.First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &post, nil
}

// GetBySlug retrieves the newest published post with an exact slug match.
// Slugs are not unique; ordering makes the winner deterministic.
func GetBySlug(db *gorm.DB, slug string) (*models.BlogPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if slug == "" {
		return nil, ErrSlugEmpty
	}

	var post models.BlogPost
	result := db.Where("slug = ? AND published = ?", slug, true).
		Order(orderNewestFirst).
		First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &post, nil
}

// Create inserts a new blog post.
func Create(db *gorm.DB, post *models.BlogPost) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(post)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update applies the patch to the post with the given ID. An empty patch is
// a no-op success. A missing ID is ErrNotFound.
func Update(db *gorm.DB, id uint64, patch Patch) error {
	if db == nil {
		return ErrDBNil
	}

	cols := patch.columns()
	if len(cols) == 0 {
		return nil
	}

	// existence check first: affected-row counts are unreliable for
	// updates that write identical values
	var post models.BlogPost
	result := db.First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	result = db.Model(&post).Updates(cols)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes the post with the given ID. A missing ID is ErrNotFound.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
