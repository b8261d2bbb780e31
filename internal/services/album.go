package services

//go:generate mockgen -source=album.go -destination=album_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

// AlbumStore persists albums and their images.
type AlbumStore interface {
	Create(ctx context.Context, album *models.NewAlbum) (*models.Album, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Album, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Album, error)
	AddImage(ctx context.Context, albumID, imageID uuid.UUID) (bool, error)
	ListImages(ctx context.Context, albumID uuid.UUID) ([]models.Image, error)
}

// AlbumService handles albums. Only the owner sees an album.
type AlbumService struct {
	store     AlbumStore
	images    ImageGetter
	publisher EventPublisher
}

// NewAlbumService creates a new AlbumService. publisher may be nil.
func NewAlbumService(store AlbumStore, images ImageGetter, publisher EventPublisher) *AlbumService {
	return &AlbumService{
		store:     store,
		images:    images,
		publisher: publisher,
	}
}

// Create stores an album. A cover image is also added to the album and must
// be public or owned by the album's user.
func (s *AlbumService) Create(ctx context.Context, album *models.NewAlbum) (*models.Album, error) {
	if strings.TrimSpace(album.Name) == "" {
		return nil, ErrInvalidInput
	}
	if album.CoverImageID != nil {
		if _, err := visibleImage(ctx, s.images, *album.CoverImageID, &album.UserID); err != nil {
			return nil, err
		}
	}

	created, err := s.store.Create(ctx, album)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to create album", "user_id", album.UserID, "error", err)
		return nil, err
	}

	publish(ctx, s.publisher, models.EventAlbumCreated, created.ID.String(), created.UserID.String(), created)
	return created, nil
}

// ListByUser returns the user's albums, newest first.
func (s *AlbumService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Album, error) {
	return s.store.ListByUser(ctx, userID)
}

// AddImage adds imageID to an album owned by userID. The image must be public
// or belong to userID. It reports whether the image was new to the album.
func (s *AlbumService) AddImage(ctx context.Context, userID, albumID, imageID uuid.UUID) (bool, error) {
	if _, err := s.owned(ctx, userID, albumID); err != nil {
		return false, err
	}
	if _, err := visibleImage(ctx, s.images, imageID, &userID); err != nil {
		return false, err
	}

	added, err := s.store.AddImage(ctx, albumID, imageID)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, ErrImageNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to add image to album", "album_id", albumID, "image_id", imageID, "error", err)
		return false, err
	}
	return added, nil
}

// ListImages returns the images of an album owned by userID.
func (s *AlbumService) ListImages(ctx context.Context, userID, albumID uuid.UUID) ([]models.Image, error) {
	if _, err := s.owned(ctx, userID, albumID); err != nil {
		return nil, err
	}
	return s.store.ListImages(ctx, albumID)
}

func (s *AlbumService) owned(ctx context.Context, userID, albumID uuid.UUID) (*models.Album, error) {
	album, err := s.store.GetByID(ctx, albumID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	if album.UserID != userID {
		return nil, ErrAlbumNotFound
	}
	return album, nil
}
