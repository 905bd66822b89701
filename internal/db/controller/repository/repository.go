// Package repository provides CRUD operations for showcased repositories.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrNotFound is returned when a repository is not found.
	ErrNotFound = errors.New("repository not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Patch enumerates the updatable fields of a repository. Nil fields are
// left untouched by Update.
type Patch struct {
	Title        *string
	Description  *string
	GithubURL    *string
	DemoURL      *string
	Thumbnail    *string
	Technologies *string
	Featured     *bool
}

func (p Patch) columns() map[string]any {
	cols := make(map[string]any)

	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.GithubURL != nil {
		cols["github_url"] = *p.GithubURL
	}
	if p.DemoURL != nil {
		cols["demo_url"] = *p.DemoURL
	}
	if p.Thumbnail != nil {
		cols["thumbnail"] = *p.Thumbnail
	}
	if p.Technologies != nil {
		cols["technologies"] = *p.Technologies
	}
	if p.Featured != nil {
		cols["featured"] = *p.Featured
	}

	return cols
}

// GetAll retrieves all repositories, newest first. There is no draft state;
// every repository is publicly visible.
func GetAll(db *gorm.DB) ([]models.Repository, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var repos []models.Repository
	result := db.Order("created_at DESC").Find(&repos)
	if result.Error != nil {
		return nil, result.Error
	}

	return repos, nil
}

// GetByID retrieves a repository by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Repository, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var repo models.Repository
	result := db.First(&repo, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &repo, nil
}

// Create inserts a new repository. An empty technologies list falls back to
// the default.
func Create(db *gorm.DB, repo *models.Repository) error {
	if db == nil {
		return ErrDBNil
	}

	if repo.Technologies == "" {
		repo.Technologies = models.DefaultTechnologies
	}

	result := db.Create(repo)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update applies the patch to the repository with the given ID. An empty
// patch is a no-op success. A missing ID is ErrNotFound.
func Update(db *gorm.DB, id uint64, patch Patch) error {
	if db == nil {
		return ErrDBNil
	}

	cols := patch.columns()
	if len(cols) == 0 {
		return nil
	}

	var repo models.Repository
	result := db.First(&repo, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	result = db.Model(&repo).Updates(cols)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes the repository with the given ID. A missing ID is ErrNotFound.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Repository{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
