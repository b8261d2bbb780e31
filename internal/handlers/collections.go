package handlers

//go:generate mockgen -source=collections.go -destination=collections_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// CollectionLister lists curated collections.
type CollectionLister interface {
	List(ctx context.Context) ([]models.Collection, error)
}

// CollectionImageLister lists the public images of a collection.
type CollectionImageLister interface {
	ListImages(ctx context.Context, collectionID uuid.UUID) ([]models.Image, error)
}

// CollectionsResponse wraps a list of collections
// swagger:model CollectionsResponse
type CollectionsResponse struct {
	Collections []models.Collection `json:"collections"`
}

// NewListCollectionsHandler returns all collections, featured first.
// @Summary List collections
// @Tags collections
// @Produce json
// @Success 200 {object} handlers.CollectionsResponse
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch collections"
// @Router /collections [get]
func NewListCollectionsHandler(svc CollectionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err, "Failed to fetch collections")
			return
		}
		writeJSON(w, http.StatusOK, CollectionsResponse{Collections: nonNil(collections)})
	}
}

// NewListCollectionImagesHandler returns the public images of a collection.
// @Summary List collection images
// @Tags collections
// @Produce json
// @Param collectionID path string true "Collection ID"
// @Success 200 {object} handlers.ImagesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid collection ID"
// @Failure 404 {object} handlers.ErrorResponse "Collection not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch collection images"
// @Router /collections/{collectionID}/images [get]
func NewListCollectionImagesHandler(svc CollectionImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collectionID, err := uuidParam(r, "collectionID")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid collection ID")
			return
		}

		images, err := svc.ListImages(r.Context(), collectionID)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch collection images")
			return
		}
		writeJSON(w, http.StatusOK, ImagesResponse{Images: nonNil(images)})
	}
}
