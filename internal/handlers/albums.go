package handlers

//go:generate mockgen -source=albums.go -destination=albums_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// AlbumLister lists a user's albums.
type AlbumLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Album, error)
}

// AlbumCreator stores an album.
type AlbumCreator interface {
	Create(ctx context.Context, album *models.NewAlbum) (*models.Album, error)
}

// AlbumImageAdder adds an image to an album owned by the caller.
type AlbumImageAdder interface {
	AddImage(ctx context.Context, userID, albumID, imageID uuid.UUID) (bool, error)
}

// AlbumImageLister lists the images of an album owned by the caller.
type AlbumImageLister interface {
	ListImages(ctx context.Context, userID, albumID uuid.UUID) ([]models.Image, error)
}

// CreateAlbumRequest represents the JSON body for creating an album
// swagger:model CreateAlbumRequest
type CreateAlbumRequest struct {
	// required: true
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	CoverImageID *string `json:"coverImageId"`
}

// AddAlbumImageRequest represents the JSON body for adding an image to an album
// swagger:model AddAlbumImageRequest
type AddAlbumImageRequest struct {
	// required: true
	ImageID string `json:"imageId" validate:"required"`
}

// AlbumsResponse wraps a list of albums
// swagger:model AlbumsResponse
type AlbumsResponse struct {
	Albums []models.Album `json:"albums"`
}

// AlbumResponse wraps one album
// swagger:model AlbumResponse
type AlbumResponse struct {
	Album *models.Album `json:"album"`
}

// NewListAlbumsHandler returns the caller's albums.
// @Summary List my albums
// @Tags albums
// @Produce json
// @Success 200 {object} handlers.AlbumsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch albums"
// @Router /albums [get]
// @Security BearerAuth
func NewListAlbumsHandler(svc AlbumLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		albums, err := svc.ListByUser(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch albums")
			return
		}

		writeJSON(w, http.StatusOK, AlbumsResponse{Albums: nonNil(albums)})
	}
}

// NewCreateAlbumHandler creates an album. A cover image is added to the album as well.
// @Summary Create album
// @Tags albums
// @Accept json
// @Produce json
// @Param request body handlers.CreateAlbumRequest true "Album"
// @Success 201 {object} handlers.AlbumResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create album"
// @Router /albums [post]
// @Security BearerAuth
func NewCreateAlbumHandler(svc AlbumCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CreateAlbumRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("invalid create album request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		album := &models.NewAlbum{
			UserID:      user.ID,
			Name:        req.Name,
			Description: req.Description,
		}
		if req.CoverImageID != nil && *req.CoverImageID != "" {
			coverID, err := uuid.Parse(*req.CoverImageID)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid cover image ID")
				return
			}
			album.CoverImageID = &coverID
		}

		created, err := svc.Create(r.Context(), album)
		if err != nil {
			writeServiceError(w, err, "Failed to create album")
			return
		}

		writeJSON(w, http.StatusCreated, AlbumResponse{Album: created})
	}
}

// NewListAlbumImagesHandler returns the images of one of the caller's albums.
// @Summary List album images
// @Tags albums
// @Produce json
// @Param albumID path string true "Album ID"
// @Success 200 {object} handlers.ImagesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid album ID"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Album not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch album images"
// @Router /albums/{albumID}/images [get]
// @Security BearerAuth
func NewListAlbumImagesHandler(svc AlbumImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		albumID, err := uuidParam(r, "albumID")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid album ID")
			return
		}

		images, err := svc.ListImages(r.Context(), user.ID, albumID)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch album images")
			return
		}

		writeJSON(w, http.StatusOK, ImagesResponse{Images: nonNil(images)})
	}
}

// NewAddAlbumImageHandler adds an image to one of the caller's albums.
// @Summary Add image to album
// @Tags albums
// @Accept json
// @Produce json
// @Param albumID path string true "Album ID"
// @Param request body handlers.AddAlbumImageRequest true "Image to add"
// @Success 200 {object} handlers.MessageResponse "Image already in album"
// @Success 201 {object} handlers.MessageResponse "Image added to album"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Album or image not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to add image to album"
// @Router /albums/{albumID}/images [post]
// @Security BearerAuth
func NewAddAlbumImageHandler(svc AlbumImageAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		albumID, err := uuidParam(r, "albumID")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid album ID")
			return
		}

		var req AddAlbumImageRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("invalid add album image request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		imageID, err := uuid.Parse(req.ImageID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image ID")
			return
		}

		added, err := svc.AddImage(r.Context(), user.ID, albumID, imageID)
		if err != nil {
			writeServiceError(w, err, "Failed to add image to album")
			return
		}

		if !added {
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Image already in album"})
			return
		}
		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Image added to album"})
	}
}
