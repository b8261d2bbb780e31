package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Image represents an image row in the database
type Image struct {
	ID          uuid.UUID `json:"id" db:"id"`                             // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`                   // Owner
	Title       *string   `json:"title,omitempty" db:"title"`             // Optional title
	Description *string   `json:"description,omitempty" db:"description"` // Optional description
	FilePath    string    `json:"file_path" db:"file_path"`               // URI or data URI of the image payload
	FileSize    *int64    `json:"file_size,omitempty" db:"file_size"`     // Size in bytes
	MimeType    *string   `json:"mime_type,omitempty" db:"mime_type"`     // MIME type, e.g. image/png
	Width       *int      `json:"width,omitempty" db:"width"`             // Width in pixels
	Height      *int      `json:"height,omitempty" db:"height"`           // Height in pixels
	Tags        Tags      `json:"tags" db:"tags"`                         // Free-form tags
	IsPublic    bool      `json:"is_public" db:"is_public"`               // Visible in the public gallery
	CreatedAt   time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}

// NewImage holds the caller-supplied fields of an image about to be inserted.
type NewImage struct {
	UserID      uuid.UUID
	Title       *string
	Description *string
	FilePath    string
	FileSize    *int64
	MimeType    *string
	Width       *int
	Height      *int
	Tags        Tags
	IsPublic    *bool // nil means public
}

// Tags is a list of strings stored as a JSON array.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported source type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}
