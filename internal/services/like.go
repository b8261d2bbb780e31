package services

//go:generate mockgen -source=like.go -destination=like_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

// LikeStore toggles and counts likes.
type LikeStore interface {
	Toggle(ctx context.Context, userID, imageID uuid.UUID) (*models.LikeState, error)
	Status(ctx context.Context, imageID uuid.UUID, userID *uuid.UUID) (*models.LikeState, error)
}

// LikeService handles likes.
type LikeService struct {
	store     LikeStore
	images    ImageGetter
	publisher EventPublisher
}

// NewLikeService creates a new LikeService. publisher may be nil.
func NewLikeService(store LikeStore, images ImageGetter, publisher EventPublisher) *LikeService {
	return &LikeService{
		store:     store,
		images:    images,
		publisher: publisher,
	}
}

// Toggle flips the like of userID on imageID.
func (s *LikeService) Toggle(ctx context.Context, userID, imageID uuid.UUID) (*models.LikeState, error) {
	if _, err := visibleImage(ctx, s.images, imageID, &userID); err != nil {
		return nil, err
	}

	state, err := s.store.Toggle(ctx, userID, imageID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to toggle like", "user_id", userID, "image_id", imageID, "error", err)
		return nil, err
	}

	publish(ctx, s.publisher, models.EventLikeToggled, imageID.String(), userID.String(), state)
	return state, nil
}

// Status returns the like count of imageID and whether userID (if any) liked it.
// An unknown image, or one the caller may not see, has no likes.
func (s *LikeService) Status(ctx context.Context, imageID uuid.UUID, userID *uuid.UUID) (*models.LikeState, error) {
	if _, err := visibleImage(ctx, s.images, imageID, userID); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return &models.LikeState{}, nil
		}
		return nil, err
	}
	return s.store.Status(ctx, imageID, userID)
}
