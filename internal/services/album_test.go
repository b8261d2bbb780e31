package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

func TestAlbumService_Create(t *testing.T) {
	ctx := context.Background()
	userID, otherID := uuid.New(), uuid.New()
	coverID := uuid.New()

	tests := []struct {
		name     string
		album    *models.NewAlbum
		cover    *models.Image
		coverErr error
		created  *models.Album
		storeErr error
		wantErr  error
	}{
		{
			name:    "name only",
			album:   &models.NewAlbum{UserID: userID, Name: "Trips"},
			created: &models.Album{ID: uuid.New(), UserID: userID, Name: "Trips"},
		},
		{
			name:    "with own private cover",
			album:   &models.NewAlbum{UserID: userID, Name: "Trips", CoverImageID: &coverID},
			cover:   &models.Image{ID: coverID, UserID: userID},
			created: &models.Album{ID: uuid.New(), UserID: userID, Name: "Trips", CoverImageID: uuid.NullUUID{UUID: coverID, Valid: true}, ImageCount: 1},
		},
		{
			name:    "with another user's public cover",
			album:   &models.NewAlbum{UserID: userID, Name: "Trips", CoverImageID: &coverID},
			cover:   &models.Image{ID: coverID, UserID: otherID, IsPublic: true},
			created: &models.Album{ID: uuid.New(), UserID: userID, Name: "Trips", CoverImageID: uuid.NullUUID{UUID: coverID, Valid: true}, ImageCount: 1},
		},
		{
			name:    "blank name",
			album:   &models.NewAlbum{UserID: userID, Name: "  "},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:    "another user's private cover",
			album:   &models.NewAlbum{UserID: userID, Name: "Trips", CoverImageID: &coverID},
			cover:   &models.Image{ID: coverID, UserID: otherID},
			wantErr: services.ErrImageNotFound,
		},
		{
			name:     "unknown cover image",
			album:    &models.NewAlbum{UserID: userID, Name: "Trips", CoverImageID: &coverID},
			coverErr: repositories.ErrNotFound,
			wantErr:  services.ErrImageNotFound,
		},
		{
			name:     "cover removed before insert",
			album:    &models.NewAlbum{UserID: userID, Name: "Trips", CoverImageID: &coverID},
			cover:    &models.Image{ID: coverID, UserID: userID},
			storeErr: repositories.ErrNotFound,
			wantErr:  services.ErrImageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockAlbumStore(ctrl)
			images := services.NewMockImageGetter(ctrl)
			publisher := services.NewMockEventPublisher(ctrl)

			if tt.cover != nil || tt.coverErr != nil {
				images.EXPECT().GetByID(ctx, coverID).Return(tt.cover, tt.coverErr)
			}
			if tt.created != nil || tt.storeErr != nil {
				store.EXPECT().Create(ctx, tt.album).Return(tt.created, tt.storeErr)
			}
			if tt.wantErr == nil {
				publisher.EXPECT().Publish(ctx, models.EventAlbumCreated, tt.created.ID.String(), userID.String(), tt.created)
			}

			got, err := services.NewAlbumService(store, images, publisher).Create(ctx, tt.album)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.created, got)
		})
	}
}

func TestAlbumService_AddImage(t *testing.T) {
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()
	albumID, imageID := uuid.New(), uuid.New()
	album := &models.Album{ID: albumID, UserID: owner, Name: "Trips"}
	ownImage := &models.Image{ID: imageID, UserID: owner}
	publicImage := &models.Image{ID: imageID, UserID: stranger, IsPublic: true}
	privateImage := &models.Image{ID: imageID, UserID: stranger}

	tests := []struct {
		name      string
		userID    uuid.UUID
		album     *models.Album
		getErr    error
		image     *models.Image
		imageErr  error
		addCalled bool
		added     bool
		addErr    error
		wantAdded bool
		wantErr   error
	}{
		{name: "owner adds own image", userID: owner, album: album, image: ownImage, addCalled: true, added: true, wantAdded: true},
		{name: "owner adds public image", userID: owner, album: album, image: publicImage, addCalled: true, added: true, wantAdded: true},
		{name: "image already present", userID: owner, album: album, image: ownImage, addCalled: true, added: false},
		{name: "another user's private image", userID: owner, album: album, image: privateImage, wantErr: services.ErrImageNotFound},
		{name: "other user's album", userID: stranger, album: album, wantErr: services.ErrAlbumNotFound},
		{name: "unknown album", userID: owner, getErr: repositories.ErrNotFound, wantErr: services.ErrAlbumNotFound},
		{name: "unknown image", userID: owner, album: album, imageErr: repositories.ErrNotFound, wantErr: services.ErrImageNotFound},
		{name: "image removed before insert", userID: owner, album: album, image: ownImage, addCalled: true, addErr: repositories.ErrNotFound, wantErr: services.ErrImageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockAlbumStore(ctrl)
			images := services.NewMockImageGetter(ctrl)

			store.EXPECT().GetByID(ctx, albumID).Return(tt.album, tt.getErr)
			if tt.image != nil || tt.imageErr != nil {
				images.EXPECT().GetByID(ctx, imageID).Return(tt.image, tt.imageErr)
			}
			if tt.addCalled {
				store.EXPECT().AddImage(ctx, albumID, imageID).Return(tt.added, tt.addErr)
			}

			added, err := services.NewAlbumService(store, images, nil).AddImage(ctx, tt.userID, albumID, imageID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
		})
	}
}

func TestAlbumService_ListImages(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	albumID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockAlbumStore(ctrl)
	store.EXPECT().GetByID(ctx, albumID).Return(&models.Album{ID: albumID, UserID: owner}, nil).Times(2)
	store.EXPECT().ListImages(ctx, albumID).Return([]models.Image{{ID: uuid.New()}}, nil)

	svc := services.NewAlbumService(store, services.NewMockImageGetter(ctrl), nil)

	images, err := svc.ListImages(ctx, owner, albumID)
	assert.NoError(t, err)
	assert.Len(t, images, 1)

	_, err = svc.ListImages(ctx, uuid.New(), albumID)
	assert.ErrorIs(t, err, services.ErrAlbumNotFound)
}
