package models

import (
	"time"

	"github.com/google/uuid"
)

// Album is a user-owned grouping of images
type Album struct {
	ID           uuid.UUID     `json:"id" db:"id"`                             // Primary key
	UserID       uuid.UUID     `json:"user_id" db:"user_id"`                   // Owner
	Name         string        `json:"name" db:"name"`                         // Album name
	Description  *string       `json:"description,omitempty" db:"description"` // Optional description
	CoverImageID uuid.NullUUID `json:"cover_image_id" db:"cover_image_id"`     // Optional cover image
	ImageCount   int           `json:"image_count" db:"image_count"`           // Number of images in the album
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`             // Last update timestamp
}

// NewAlbum holds the fields of an album about to be inserted.
type NewAlbum struct {
	UserID       uuid.UUID
	Name         string
	Description  *string
	CoverImageID *uuid.UUID
}
