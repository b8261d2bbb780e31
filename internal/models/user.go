package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`                               // Primary key
	ExternalID  string    `json:"external_id" db:"external_id"`             // Identity-provider subject id, unique
	Email       *string   `json:"email,omitempty" db:"email"`               // User email
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"` // Display name
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`     // Avatar picture URL
	CreatedAt   time.Time `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// Identity is what the identity provider vouches for after verifying a token.
type Identity struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}
