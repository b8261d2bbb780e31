package services

//go:generate mockgen -source=image.go -destination=image_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

// ImageStore persists and lists images.
type ImageStore interface {
	Create(ctx context.Context, image *models.NewImage) (*models.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Image, error)
	ListPublic(ctx context.Context, limit, offset int) ([]models.Image, error)
}

// ImageService handles image rows.
type ImageService struct {
	store     ImageStore
	publisher EventPublisher
}

// NewImageService creates a new ImageService. publisher may be nil.
func NewImageService(store ImageStore, publisher EventPublisher) *ImageService {
	return &ImageService{
		store:     store,
		publisher: publisher,
	}
}

// Create stores an image owned by image.UserID and publishes image.created.
func (s *ImageService) Create(ctx context.Context, image *models.NewImage) (*models.Image, error) {
	if strings.TrimSpace(image.FilePath) == "" {
		return nil, ErrInvalidInput
	}

	created, err := s.store.Create(ctx, image)
	if err != nil {
		logger.Log.Errorw("failed to create image", "user_id", image.UserID, "error", err)
		return nil, err
	}

	publish(ctx, s.publisher, models.EventImageCreated, created.ID.String(), created.UserID.String(), created)
	return created, nil
}

// Get returns one image or ErrImageNotFound.
func (s *ImageService) Get(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	image, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	return image, err
}

// ListByUser returns a user's images, newest first.
func (s *ImageService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Image, error) {
	return s.store.ListByUser(ctx, userID)
}

// ListPublic returns a page of public images, newest first.
func (s *ImageService) ListPublic(ctx context.Context, limit, offset int) ([]models.Image, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	return s.store.ListPublic(ctx, limit, offset)
}
