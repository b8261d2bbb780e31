package handlers

//go:generate mockgen -source=uploads.go -destination=uploads_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// multipartOverhead is allowed on top of the file limit for headers and boundaries.
const multipartOverhead = 1 << 20

// Uploader stores an uploaded image file.
type Uploader interface {
	Upload(ctx context.Context, userID uuid.UUID, name string, r io.Reader) (*models.Upload, error)
}

// UploadResponse wraps the stored file
// swagger:model UploadResponse
type UploadResponse struct {
	Upload *models.Upload `json:"upload"`
}

// NewUploadHandler stores the multipart "file" field in object storage.
// @Summary Upload image file
// @Description Stores an image file and returns its public URL and dimensions, ready for POST /images.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "File is not a supported image"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 413 {object} handlers.ErrorResponse "File too large"
// @Failure 500 {object} handlers.ErrorResponse "Failed to upload file"
// @Router /uploads [post]
// @Security BearerAuth
func NewUploadHandler(svc Uploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			logger.Log.Warnw("invalid upload request", "error", err)
			writeError(w, http.StatusBadRequest, "File is required")
			return
		}
		defer file.Close()

		upload, err := svc.Upload(r.Context(), user.ID, header.Filename, file)
		if err != nil {
			writeServiceError(w, err, "Failed to upload file")
			return
		}

		writeJSON(w, http.StatusCreated, UploadResponse{Upload: upload})
	}
}
