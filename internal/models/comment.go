package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is free text left by a user on an image
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ImageID   uuid.UUID `json:"image_id" db:"image_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
