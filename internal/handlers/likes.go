package handlers

//go:generate mockgen -source=likes.go -destination=likes_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/middlewares"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// LikeToggler flips a like.
type LikeToggler interface {
	Toggle(ctx context.Context, userID, imageID uuid.UUID) (*models.LikeState, error)
}

// LikeStatusReader reads the like count and the caller's like.
type LikeStatusReader interface {
	Status(ctx context.Context, imageID uuid.UUID, userID *uuid.UUID) (*models.LikeState, error)
}

// ToggleLikeRequest represents the JSON body for toggling a like
// swagger:model ToggleLikeRequest
type ToggleLikeRequest struct {
	// required: true
	ImageID string `json:"imageId" validate:"required"`
}

// NewLikeStatusHandler returns the like count of an image and, for an
// authenticated caller, whether they liked it.
// @Summary Like status
// @Tags likes
// @Produce json
// @Param imageId query string true "Image ID"
// @Success 200 {object} models.LikeState
// @Failure 400 {object} handlers.ErrorResponse "Image ID is required"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get like status"
// @Router /likes [get]
func NewLikeStatusHandler(svc LikeStatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("imageId")
		if raw == "" {
			writeError(w, http.StatusBadRequest, "Image ID is required")
			return
		}
		imageID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image ID")
			return
		}

		var userID *uuid.UUID
		if user := middlewares.GetUserFromContext(r.Context()); user != nil {
			userID = &user.ID
		}

		state, err := svc.Status(r.Context(), imageID, userID)
		if err != nil {
			writeServiceError(w, err, "Failed to get like status")
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// NewToggleLikeHandler likes an image, or removes the caller's like.
// @Summary Toggle like
// @Tags likes
// @Accept json
// @Produce json
// @Param request body handlers.ToggleLikeRequest true "Image to like"
// @Success 200 {object} models.LikeState
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to toggle like"
// @Router /likes [post]
// @Security BearerAuth
func NewToggleLikeHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req ToggleLikeRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("invalid toggle like request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		imageID, err := uuid.Parse(req.ImageID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image ID")
			return
		}

		state, err := svc.Toggle(r.Context(), user.ID, imageID)
		if err != nil {
			writeServiceError(w, err, "Failed to toggle like")
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
