package handlers

//go:generate mockgen -source=search.go -destination=search_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// SimilaritySearcher finds images similar to a description or an image.
type SimilaritySearcher interface {
	Search(ctx context.Context, q models.SimilarityQuery) ([]models.SimilarImage, error)
}

// SimilarImagesResponse wraps search hits
// swagger:model SimilarImagesResponse
type SimilarImagesResponse struct {
	Results []models.SimilarImage `json:"results"`
}

// NewSimilarSearchHandler searches for similar images.
// @Summary Similar image search
// @Description Requires textDescription or imageUri. Answers 501 while no search backend is configured.
// @Tags search
// @Accept json
// @Produce json
// @Param request body models.SimilarityQuery true "Query"
// @Success 200 {object} handlers.SimilarImagesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 501 {object} handlers.ErrorResponse "Similarity search is not available"
// @Router /search/similar [post]
// @Security BearerAuth
func NewSimilarSearchHandler(svc SimilaritySearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		var q models.SimilarityQuery
		if err := decodeBody(r, &q); err != nil {
			logger.Log.Warnw("invalid similarity request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		results, err := svc.Search(r.Context(), q)
		if err != nil {
			writeServiceError(w, err, "Failed to search similar images")
			return
		}
		writeJSON(w, http.StatusOK, SimilarImagesResponse{Results: nonNil(results)})
	}
}
