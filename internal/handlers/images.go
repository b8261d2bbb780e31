package handlers

//go:generate mockgen -source=images.go -destination=images_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// PublicImageLister lists the public gallery.
type PublicImageLister interface {
	ListPublic(ctx context.Context, limit, offset int) ([]models.Image, error)
}

// UserImageLister lists one user's images.
type UserImageLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Image, error)
}

// ImageCreator stores an image.
type ImageCreator interface {
	Create(ctx context.Context, image *models.NewImage) (*models.Image, error)
}

// CreateImageRequest represents the JSON body for creating an image
// swagger:model CreateImageRequest
type CreateImageRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	FilePath    string   `json:"file_path" validate:"required"`
	FileSize    *int64   `json:"file_size" validate:"omitempty,gte=0"`
	MimeType    *string  `json:"mime_type"`
	Width       *int     `json:"width" validate:"omitempty,gt=0"`
	Height      *int     `json:"height" validate:"omitempty,gt=0"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"is_public"`
}

// ImagesResponse wraps a list of images
// swagger:model ImagesResponse
type ImagesResponse struct {
	Images []models.Image `json:"images"`
}

// ImageResponse wraps one image
// swagger:model ImageResponse
type ImageResponse struct {
	Image *models.Image `json:"image"`
}

// NewListPublicImagesHandler returns the public gallery.
// @Summary List public images
// @Description Public images, newest first.
// @Tags images
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} handlers.ImagesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid paging"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch images"
// @Router /images [get]
func NewListPublicImagesHandler(svc PublicImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset, err := parsePage(r)
		if err != nil {
			logger.Log.Warnw("invalid paging", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid limit or offset")
			return
		}

		images, err := svc.ListPublic(r.Context(), limit, offset)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch images")
			return
		}

		writeJSON(w, http.StatusOK, ImagesResponse{Images: nonNil(images)})
	}
}

// NewListUserImagesHandler returns the caller's images.
// @Summary List my images
// @Description Images owned by the authenticated user, newest first. A first-time caller gets an empty list.
// @Tags images
// @Produce json
// @Success 200 {object} handlers.ImagesResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch user images"
// @Router /images/user [get]
// @Security BearerAuth
func NewListUserImagesHandler(svc UserImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		images, err := svc.ListByUser(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch user images")
			return
		}

		writeJSON(w, http.StatusOK, ImagesResponse{Images: nonNil(images)})
	}
}

// NewCreateImageHandler stores an image owned by the caller.
// @Summary Create image
// @Description Stores image metadata. file_path is a URL or a data URI. Images are public unless is_public is false.
// @Tags images
// @Accept json
// @Produce json
// @Param request body handlers.CreateImageRequest true "Image"
// @Success 201 {object} handlers.ImageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create image"
// @Router /images [post]
// @Security BearerAuth
func NewCreateImageHandler(svc ImageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CreateImageRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("invalid create image request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		image, err := svc.Create(r.Context(), &models.NewImage{
			UserID:      user.ID,
			Title:       req.Title,
			Description: req.Description,
			FilePath:    req.FilePath,
			FileSize:    req.FileSize,
			MimeType:    req.MimeType,
			Width:       req.Width,
			Height:      req.Height,
			Tags:        req.Tags,
			IsPublic:    req.IsPublic,
		})
		if err != nil {
			writeServiceError(w, err, "Failed to create image")
			return
		}

		writeJSON(w, http.StatusCreated, ImageResponse{Image: image})
	}
}
