package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

func TestGenerationService_Generate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := services.NewMockGenerator(ctrl)
	images := services.NewMockImageCreator(ctrl)
	svc := services.NewGenerationService(generator, images)

	size := models.Size512
	req := models.GenerationRequest{Prompt: "a lighthouse on a cliff at night", Size: &size}
	media := "data:image/jpeg;base64,aGVsbG8="

	generator.EXPECT().Generate(ctx, req).Return(media, nil)
	images.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, img *models.NewImage) (*models.Image, error) {
			assert.Equal(t, userID, img.UserID)
			assert.Equal(t, "a lighthouse on a cliff at night", *img.Title)
			assert.Equal(t, req.Prompt, *img.Description)
			assert.Equal(t, models.Tags{"a", "lighthouse", "on", "a", "cliff"}, img.Tags)
			assert.Equal(t, "image/jpeg", *img.MimeType)
			assert.Equal(t, int64(5), *img.FileSize)
			assert.Equal(t, media, img.FilePath)
			assert.Nil(t, img.IsPublic)
			return &models.Image{ID: uuid.New(), UserID: userID, FilePath: media}, nil
		})

	got, err := svc.Generate(ctx, userID, req)
	assert.NoError(t, err)
	assert.Equal(t, media, got.Media)
	assert.Equal(t, userID, got.Image.UserID)
}

func TestGenerationService_Generate_Errors(t *testing.T) {
	ctx := context.Background()
	bad := "300x300"
	apiErr := errors.New("quota exceeded")

	tests := []struct {
		name    string
		req     models.GenerationRequest
		genErr  error
		wantErr error
	}{
		{name: "empty prompt", req: models.GenerationRequest{Prompt: " "}, wantErr: services.ErrInvalidInput},
		{name: "unsupported size", req: models.GenerationRequest{Prompt: "cat", Size: &bad}, wantErr: services.ErrInvalidInput},
		{name: "api failure", req: models.GenerationRequest{Prompt: "cat"}, genErr: apiErr, wantErr: apiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			generator := services.NewMockGenerator(ctrl)
			images := services.NewMockImageCreator(ctrl)
			if tt.genErr != nil {
				generator.EXPECT().Generate(ctx, tt.req).Return("", tt.genErr)
			}

			_, err := services.NewGenerationService(generator, images).Generate(ctx, uuid.New(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
