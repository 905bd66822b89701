package models

import (
	"time"
)

// DefaultTechnologies is the technologies value assigned when none is provided.
const DefaultTechnologies = "JavaScript"

// Repository represents a showcased code repository.
// All repositories are publicly visible; there is no draft state.
type Repository struct {
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is the repository display name.
	Title string `gorm:"size:255;not null" json:"title"`
	// Description is the repository summary.
	Description string `gorm:"type:text;not null" json:"description"`
	// GithubURL must point at a github.com repository.
	GithubURL string `gorm:"size:500;not null" json:"github_url"`
	// DemoURL is an optional live demo link.
	DemoURL string `gorm:"size:500" json:"demo_url"`
	// Thumbnail is an optional preview image URL.
	Thumbnail string `gorm:"size:500" json:"thumbnail"`
	// Technologies is a comma separated list of technologies used.
	Technologies string `gorm:"size:500;not null;default:'JavaScript'" json:"technologies"`
	// Featured marks the repository for highlighted placement.
	Featured  bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
