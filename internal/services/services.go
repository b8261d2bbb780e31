// Package services holds the business operations behind the HTTP handlers.
package services

//go:generate mockgen -source=services.go -destination=services_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// Error variables
var (
	ErrImageNotFound         = errors.New("image not found")
	ErrAlbumNotFound         = errors.New("album not found")
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrCapabilityUnavailable = errors.New("capability not available")
	ErrNotAnImage            = errors.New("file is not a supported image")
	ErrUploadTooLarge        = errors.New("file exceeds the upload limit")
)

// DefaultImageTitle is used when an image is derived from an empty prompt.
const DefaultImageTitle = "AI Generated Image"

const (
	maxTitleRunes = 100
	maxPromptTags = 5
)

// EventPublisher emits activity events. Failures are handled by the publisher.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, entityID, userID string, payload any)
}

func publish(ctx context.Context, p EventPublisher, eventType, entityID, userID string, payload any) {
	if p == nil {
		return
	}
	p.Publish(ctx, eventType, entityID, userID, payload)
}

// DescribePrompt derives the title and tags of an image created from a prompt:
// the title is the first 100 characters of the prompt and the tags are its first five words.
func DescribePrompt(prompt string) (string, models.Tags) {
	title := strings.TrimSpace(prompt)
	if title == "" {
		return DefaultImageTitle, models.Tags{}
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		title = string([]rune(title)[:maxTitleRunes])
	}

	words := strings.Fields(prompt)
	if len(words) > maxPromptTags {
		words = words[:maxPromptTags]
	}
	return title, models.Tags(words)
}

// MimeTypeFromDataURI returns the media type of a data URI, or fallback when there is none.
func MimeTypeFromDataURI(uri, fallback string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return fallback
	}
	end := strings.IndexAny(rest, ";,")
	if end <= 0 {
		return fallback
	}
	return rest[:end]
}
