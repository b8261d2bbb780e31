package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// SimilarityService answers similar-image queries. No search backend is
// configured, so every well-formed query reports ErrCapabilityUnavailable
// rather than an empty result.
type SimilarityService struct{}

func NewSimilarityService() *SimilarityService {
	return &SimilarityService{}
}

func (s *SimilarityService) Search(ctx context.Context, q models.SimilarityQuery) ([]models.SimilarImage, error) {
	if strings.TrimSpace(q.TextDescription) == "" && strings.TrimSpace(q.ImageURI) == "" {
		return nil, ErrInvalidInput
	}
	return nil, ErrCapabilityUnavailable
}
