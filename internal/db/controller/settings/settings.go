// Package settings manages the single-row admin settings record.
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrNotFound is returned when the settings row has not been created yet.
	ErrNotFound = errors.New("admin settings not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the settings row.
func Get(db *gorm.DB) (*models.AdminSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.AdminSettings
	result := db.First(&s, models.AdminSettingsID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// Upsert writes the whole settings record, forcing the fixed row ID so
// repeated saves always hit the same row.
func Upsert(db *gorm.DB, s *models.AdminSettings) error {
	if db == nil {
		return ErrDBNil
	}

	s.ID = models.AdminSettingsID

	var existing models.AdminSettings
	result := db.First(&existing, models.AdminSettingsID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		result = db.Create(s)
		if result.Error != nil {
			return result.Error
		}

		return nil
	}
	if result.Error != nil {
		return result.Error
	}

	// Save writes every column, including flags reset to false.
	result = db.Save(s)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
