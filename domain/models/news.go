package models

import (
	"time"

	"github.com/google/uuid"
)

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
)

type News struct {
	ID       uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AuthorID *uuid.UUID `gorm:"type:uuid;index"`

	Title   string `gorm:"not null"`
	Content string `gorm:"type:text;not null"` // rich HTML

	// Derived fields, never hand-edited. Slug is computed from the title,
	// excerpt from the stripped content.
	Slug    string `gorm:"uniqueIndex;not null"`
	Excerpt string

	ThumbnailURL string
	Category     string `gorm:"not null;index"`

	// PublishedAt is set exactly once, at the first transition into
	// published. Re-saving a published article never bumps it.
	Status      NewsStatus `gorm:"default:'draft';index"`
	PublishedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Author *User `gorm:"foreignKey:AuthorID"`
}

func (News) TableName() string {
	return "news"
}
