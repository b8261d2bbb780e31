package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a curated, non-user-owned grouping of images
type Collection struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`
	ImageCount  int       `json:"image_count" db:"image_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
