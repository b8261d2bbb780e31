package services

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

// CommentStore persists comments.
type CommentStore interface {
	Create(ctx context.Context, userID, imageID uuid.UUID, content string) (*models.Comment, error)
	ListByImage(ctx context.Context, imageID uuid.UUID) ([]models.Comment, error)
}

// ImageGetter reads one image.
type ImageGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
}

// visibleImage loads imageID as seen by viewer. A private image of another
// user, or any private image for an anonymous viewer, reads as not found.
func visibleImage(ctx context.Context, images ImageGetter, imageID uuid.UUID, viewer *uuid.UUID) (*models.Image, error) {
	image, err := images.GetByID(ctx, imageID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	if !image.IsPublic && (viewer == nil || image.UserID != *viewer) {
		return nil, ErrImageNotFound
	}
	return image, nil
}

// CommentService handles comments on images.
type CommentService struct {
	store     CommentStore
	images    ImageGetter
	publisher EventPublisher
}

// NewCommentService creates a new CommentService. publisher may be nil.
func NewCommentService(store CommentStore, images ImageGetter, publisher EventPublisher) *CommentService {
	return &CommentService{
		store:     store,
		images:    images,
		publisher: publisher,
	}
}

// Create adds a comment by userID to imageID.
func (s *CommentService) Create(ctx context.Context, userID, imageID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}
	if _, err := visibleImage(ctx, s.images, imageID, &userID); err != nil {
		return nil, err
	}

	comment, err := s.store.Create(ctx, userID, imageID, content)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to create comment", "image_id", imageID, "error", err)
		return nil, err
	}

	publish(ctx, s.publisher, models.EventCommentCreated, comment.ID.String(), userID.String(), comment)
	return comment, nil
}

// ListByImage returns the comments of an image visible to viewer, oldest first.
// viewer is nil for anonymous callers.
func (s *CommentService) ListByImage(ctx context.Context, imageID uuid.UUID, viewer *uuid.UUID) ([]models.Comment, error) {
	if _, err := visibleImage(ctx, s.images, imageID, viewer); err != nil {
		return nil, err
	}
	return s.store.ListByImage(ctx, imageID)
}
