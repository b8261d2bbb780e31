package handlers

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/middlewares"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// CommentLister lists the comments of an image. viewer is nil for anonymous callers.
type CommentLister interface {
	ListByImage(ctx context.Context, imageID uuid.UUID, viewer *uuid.UUID) ([]models.Comment, error)
}

// CommentCreator adds a comment.
type CommentCreator interface {
	Create(ctx context.Context, userID, imageID uuid.UUID, content string) (*models.Comment, error)
}

// CreateCommentRequest represents the JSON body for commenting on an image
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	// required: true
	Content string `json:"content" validate:"required,max=2000"`
}

// CommentsResponse wraps a list of comments
// swagger:model CommentsResponse
type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

// CommentResponse wraps one comment
// swagger:model CommentResponse
type CommentResponse struct {
	Comment *models.Comment `json:"comment"`
}

// NewListCommentsHandler returns the comments of an image, oldest first.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param imageID path string true "Image ID"
// @Success 200 {object} handlers.CommentsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid image ID"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch comments"
// @Router /images/{imageID}/comments [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuidParam(r, "imageID")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image ID")
			return
		}

		var viewer *uuid.UUID
		if user := middlewares.GetUserFromContext(r.Context()); user != nil {
			viewer = &user.ID
		}

		comments, err := svc.ListByImage(r.Context(), imageID, viewer)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch comments")
			return
		}
		writeJSON(w, http.StatusOK, CommentsResponse{Comments: nonNil(comments)})
	}
}

// NewCreateCommentHandler comments on an image as the caller.
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param imageID path string true "Image ID"
// @Param request body handlers.CreateCommentRequest true "Comment"
// @Success 201 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create comment"
// @Router /images/{imageID}/comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		imageID, err := uuidParam(r, "imageID")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image ID")
			return
		}

		var req CreateCommentRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("invalid create comment request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		comment, err := svc.Create(r.Context(), user.ID, imageID, req.Content)
		if err != nil {
			writeServiceError(w, err, "Failed to create comment")
			return
		}
		writeJSON(w, http.StatusCreated, CommentResponse{Comment: comment})
	}
}
