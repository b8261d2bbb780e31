package services

//go:generate mockgen -source=generation.go -destination=generation_mock.go -package=services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/genai"
	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// Generator produces an image data URI from a prompt.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (string, error)
}

// ImageCreator stores an image row.
type ImageCreator interface {
	Create(ctx context.Context, image *models.NewImage) (*models.Image, error)
}

// GenerationService generates images and keeps them as the caller's images.
type GenerationService struct {
	generator Generator
	images    ImageCreator
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(generator Generator, images ImageCreator) *GenerationService {
	return &GenerationService{
		generator: generator,
		images:    images,
	}
}

// Generate runs req and persists the result as a public image owned by userID.
func (s *GenerationService) Generate(ctx context.Context, userID uuid.UUID, req models.GenerationRequest) (*models.GeneratedImage, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrInvalidInput
	}
	if req.Size != nil && !genai.ValidSize(*req.Size) {
		return nil, ErrInvalidInput
	}

	media, err := s.generator.Generate(ctx, req)
	if errors.Is(err, genai.ErrEmptyPrompt) || errors.Is(err, genai.ErrInvalidSize) {
		return nil, ErrInvalidInput
	}
	if err != nil {
		logger.Log.Errorw("image generation failed", "user_id", userID, "error", err)
		return nil, err
	}

	title, tags := DescribePrompt(req.Prompt)
	mimeType := MimeTypeFromDataURI(media, "image/png")
	image := &models.NewImage{
		UserID:      userID,
		Title:       &title,
		Description: &req.Prompt,
		FilePath:    media,
		MimeType:    &mimeType,
		Tags:        tags,
	}
	if size, ok := dataURISize(media); ok {
		image.FileSize = &size
	}

	created, err := s.images.Create(ctx, image)
	if err != nil {
		return nil, err
	}
	return &models.GeneratedImage{Media: media, Image: created}, nil
}

// dataURISize returns the decoded payload size of a base64 data URI.
func dataURISize(uri string) (int64, bool) {
	i := strings.Index(uri, ";base64,")
	if !strings.HasPrefix(uri, "data:") || i < 0 {
		return 0, false
	}
	payload := uri[i+len(";base64,"):]
	return int64(base64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload[max(0, len(payload)-2):], "=")), true
}
