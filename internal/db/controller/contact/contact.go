// Package contact provides persistence for contact form submissions.
// Submissions are insert-only: the admin can list and delete them, but
// nothing ever updates a stored message.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

var (
	// ErrNotFound is returned when a contact message is not found.
	ErrNotFound = errors.New("contact message not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all contact messages, newest first.
func GetAll(db *gorm.DB) ([]models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var contacts []models.Contact
	result := db.Order("created_at DESC").Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

// Create stores a contact form submission.
func Create(db *gorm.DB, c *models.Contact) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(c)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes the message with the given ID. A missing ID is ErrNotFound.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
