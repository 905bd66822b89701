package models

import (
	"time"
)

// Contact represents a contact form submission.
// Contacts are created by the public form, read and deleted by the admin,
// and never updated.
type Contact struct {
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name of the sender.
	Name string `gorm:"size:255;not null" json:"name"`
	// Email address of the sender.
	Email string `gorm:"size:255;not null" json:"email"`
	// Phone is optional.
	Phone string `gorm:"size:50" json:"phone"`
	// Message body.
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
