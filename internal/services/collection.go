package services

//go:generate mockgen -source=collection.go -destination=collection_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// CollectionStore reads curated collections.
type CollectionStore interface {
	List(ctx context.Context) ([]models.Collection, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListImages(ctx context.Context, collectionID uuid.UUID) ([]models.Image, error)
}

type CollectionService struct {
	store CollectionStore
}

func NewCollectionService(store CollectionStore) *CollectionService {
	return &CollectionService{store: store}
}

func (s *CollectionService) List(ctx context.Context) ([]models.Collection, error) {
	return s.store.List(ctx)
}

// ListImages returns the public images of a collection.
func (s *CollectionService) ListImages(ctx context.Context, collectionID uuid.UUID) ([]models.Image, error) {
	ok, err := s.store.Exists(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return s.store.ListImages(ctx, collectionID)
}
