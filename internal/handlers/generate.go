package handlers

//go:generate mockgen -source=generate.go -destination=generate_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// ImageGenerator turns a prompt into a stored image.
type ImageGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, req models.GenerationRequest) (*models.GeneratedImage, error)
}

// GenerateRequest represents the JSON body for generating an image
// swagger:model GenerateRequest
type GenerateRequest struct {
	// required: true
	Prompt string `json:"prompt" validate:"required"`
	Seed   *int64 `json:"seed"`
	// default: 1024x1024
	Size *string `json:"size" validate:"omitempty,oneof=256x256 512x512 1024x1024"`
}

// NewGenerateHandler generates an image from a prompt and keeps it as the caller's image.
// @Summary Generate image
// @Tags generate
// @Accept json
// @Produce json
// @Param request body handlers.GenerateRequest true "Prompt"
// @Success 201 {object} models.GeneratedImage
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to generate image"
// @Router /generate [post]
// @Security BearerAuth
func NewGenerateHandler(svc ImageGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req GenerateRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("invalid generate request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		generated, err := svc.Generate(r.Context(), user.ID, models.GenerationRequest{
			Prompt: req.Prompt,
			Seed:   req.Seed,
			Size:   req.Size,
		})
		if err != nil {
			writeServiceError(w, err, "Failed to generate image")
			return
		}

		writeJSON(w, http.StatusCreated, generated)
	}
}
