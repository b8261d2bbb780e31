package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

func TestListAlbumsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAlbumLister(ctrl)
	svc.EXPECT().ListByUser(gomock.Any(), testUser.ID).Return([]models.Album{{ID: uuid.New(), UserID: testUser.ID, Name: "Trips"}}, nil)

	rr := httptest.NewRecorder()
	NewListAlbumsHandler(svc).ServeHTTP(rr, withUser(newRequest(t, http.MethodGet, "/api/albums", nil), testUser))

	assert.Equal(t, http.StatusOK, rr.Code)
	albums := decodeJSON(t, rr)["albums"].([]any)
	assert.Len(t, albums, 1)
}

func TestCreateAlbumHandler(t *testing.T) {
	coverID := uuid.New()
	description := "summer"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockAlbumCreator)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "name only",
			requestBody: map[string]any{"name": "Trips"},
			setupMocks: func(m *MockAlbumCreator) {
				m.EXPECT().Create(gomock.Any(), &models.NewAlbum{UserID: testUser.ID, Name: "Trips"}).
					Return(&models.Album{ID: uuid.New(), UserID: testUser.ID, Name: "Trips"}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "album",
		},
		{
			name:        "with cover and description",
			requestBody: map[string]any{"name": "Trips", "description": description, "coverImageId": coverID.String()},
			setupMocks: func(m *MockAlbumCreator) {
				m.EXPECT().Create(gomock.Any(), &models.NewAlbum{UserID: testUser.ID, Name: "Trips", Description: &description, CoverImageID: &coverID}).
					Return(&models.Album{ID: uuid.New(), UserID: testUser.ID, Name: "Trips", ImageCount: 1}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "album",
		},
		{
			name:               "missing name",
			requestBody:        map[string]any{"description": "x"},
			setupMocks:         func(m *MockAlbumCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "bad cover id",
			requestBody:        map[string]any{"name": "Trips", "coverImageId": "cover"},
			setupMocks:         func(m *MockAlbumCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "unknown cover image",
			requestBody: map[string]any{"name": "Trips", "coverImageId": coverID.String()},
			setupMocks: func(m *MockAlbumCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrImageNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:        "storage failure",
			requestBody: map[string]any{"name": "Trips"},
			setupMocks: func(m *MockAlbumCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAlbumCreator(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			req := withUser(newRequest(t, http.MethodPost, "/api/albums", tt.requestBody), testUser)
			NewCreateAlbumHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Contains(t, decodeJSON(t, rr), tt.expectedKey)
		})
	}
}

func TestAddAlbumImageHandler(t *testing.T) {
	albumID, imageID := uuid.New(), uuid.New()

	tests := []struct {
		name               string
		albumParam         string
		requestBody        any
		setupMocks         func(m *MockAlbumImageAdder)
		expectedStatusCode int
	}{
		{
			name:        "added",
			albumParam:  albumID.String(),
			requestBody: AddAlbumImageRequest{ImageID: imageID.String()},
			setupMocks: func(m *MockAlbumImageAdder) {
				m.EXPECT().AddImage(gomock.Any(), testUser.ID, albumID, imageID).Return(true, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "already present",
			albumParam:  albumID.String(),
			requestBody: AddAlbumImageRequest{ImageID: imageID.String()},
			setupMocks: func(m *MockAlbumImageAdder) {
				m.EXPECT().AddImage(gomock.Any(), testUser.ID, albumID, imageID).Return(false, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "someone else's album",
			albumParam:  albumID.String(),
			requestBody: AddAlbumImageRequest{ImageID: imageID.String()},
			setupMocks: func(m *MockAlbumImageAdder) {
				m.EXPECT().AddImage(gomock.Any(), testUser.ID, albumID, imageID).Return(false, services.ErrAlbumNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "bad album id",
			albumParam:         "album",
			requestBody:        AddAlbumImageRequest{ImageID: imageID.String()},
			setupMocks:         func(m *MockAlbumImageAdder) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing image id",
			albumParam:         albumID.String(),
			requestBody:        map[string]string{},
			setupMocks:         func(m *MockAlbumImageAdder) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAlbumImageAdder(ctrl)
			tt.setupMocks(svc)

			req := newRequest(t, http.MethodPost, "/api/albums/"+tt.albumParam+"/images", tt.requestBody)
			req = withURLParam(withUser(req, testUser), "albumID", tt.albumParam)
			rr := httptest.NewRecorder()
			NewAddAlbumImageHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestListAlbumImagesHandler(t *testing.T) {
	albumID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAlbumImageLister(ctrl)
	svc.EXPECT().ListImages(gomock.Any(), testUser.ID, albumID).Return(nil, nil)

	req := withURLParam(withUser(newRequest(t, http.MethodGet, "/", nil), testUser), "albumID", albumID.String())
	rr := httptest.NewRecorder()
	NewListAlbumImagesHandler(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"images":[]}`, rr.Body.String())
}
