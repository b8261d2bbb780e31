package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

func TestLikeService_Toggle(t *testing.T) {
	userID, otherID, imageID := uuid.New(), uuid.New(), uuid.New()
	dbErr := errors.New("db error")

	tests := []struct {
		name     string
		image    *models.Image
		imageErr error
		toggle   bool
		state    *models.LikeState
		storeErr error
		publish  bool
		wantErr  error
	}{
		{
			name:    "liked public image",
			image:   &models.Image{ID: imageID, UserID: otherID, IsPublic: true},
			toggle:  true,
			state:   &models.LikeState{LikeCount: 3, IsLiked: true},
			publish: true,
		},
		{
			name:    "liked own private image",
			image:   &models.Image{ID: imageID, UserID: userID},
			toggle:  true,
			state:   &models.LikeState{LikeCount: 1, IsLiked: true},
			publish: true,
		},
		{
			name:    "another user's private image",
			image:   &models.Image{ID: imageID, UserID: otherID},
			wantErr: services.ErrImageNotFound,
		},
		{
			name:     "unknown image",
			imageErr: repositories.ErrNotFound,
			wantErr:  services.ErrImageNotFound,
		},
		{
			name:     "store error",
			image:    &models.Image{ID: imageID, UserID: userID},
			toggle:   true,
			storeErr: dbErr,
			wantErr:  dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockLikeStore(ctrl)
			images := services.NewMockImageGetter(ctrl)
			publisher := services.NewMockEventPublisher(ctrl)

			images.EXPECT().GetByID(gomock.Any(), imageID).Return(tt.image, tt.imageErr)
			if tt.toggle {
				store.EXPECT().Toggle(gomock.Any(), userID, imageID).Return(tt.state, tt.storeErr)
			}
			if tt.publish {
				publisher.EXPECT().Publish(gomock.Any(), models.EventLikeToggled, imageID.String(), userID.String(), tt.state)
			}

			got, err := services.NewLikeService(store, images, publisher).Toggle(context.Background(), userID, imageID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.state, got)
		})
	}
}

func TestLikeService_Status(t *testing.T) {
	ownerID, imageID := uuid.New(), uuid.New()
	private := &models.Image{ID: imageID, UserID: ownerID}
	stranger := uuid.New()

	tests := []struct {
		name      string
		userID    *uuid.UUID
		image     *models.Image
		imageErr  error
		stored    *models.LikeState
		wantCount int64
	}{
		{name: "public image, anonymous", image: &models.Image{ID: imageID, UserID: ownerID, IsPublic: true}, stored: &models.LikeState{LikeCount: 2}, wantCount: 2},
		{name: "private image, owner", userID: &ownerID, image: private, stored: &models.LikeState{LikeCount: 4}, wantCount: 4},
		{name: "private image, anonymous", image: private},
		{name: "private image, another user", userID: &stranger, image: private},
		{name: "unknown image", imageErr: repositories.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockLikeStore(ctrl)
			images := services.NewMockImageGetter(ctrl)

			images.EXPECT().GetByID(gomock.Any(), imageID).Return(tt.image, tt.imageErr)
			if tt.stored != nil {
				store.EXPECT().Status(gomock.Any(), imageID, tt.userID).Return(tt.stored, nil)
			}

			got, err := services.NewLikeService(store, images, nil).Status(context.Background(), imageID, tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, got.LikeCount)
			assert.False(t, got.IsLiked)
		})
	}
}
