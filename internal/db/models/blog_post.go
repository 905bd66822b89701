// Package models contains database model definitions.
package models

import (
	"time"
)

// BlogPost represents a blog article.
// Drafts (Published == false) are visible only through the admin API;
// the public read paths filter them out.
type BlogPost struct {
	// ID is the unique identifier for the post.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is the post headline.
	Title string `gorm:"size:255;not null" json:"title"`
	// Content is the post body, HTML or Markdown.
	Content string `gorm:"type:text;not null" json:"content"`
	// Excerpt is the short teaser shown on listing pages.
	Excerpt string `gorm:"type:text;not null" json:"excerpt"`
	// Slug is the URL-safe lookup key, derived from the title when absent.
	// Uniqueness is not enforced; lookups take the newest match.
	Slug string `gorm:"size:255;index" json:"slug"`
	// FeaturedImage is an optional image URL.
	FeaturedImage string `gorm:"size:500" json:"featured_image"`
	// Published controls public visibility.
	Published bool `gorm:"not null;default:false" json:"published"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"updated_at"`
}
