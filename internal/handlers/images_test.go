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

func TestListPublicImagesHandler(t *testing.T) {
	tests := []struct {
		name               string
		query              string
		setupMocks         func(m *MockPublicImageLister)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:  "default paging",
			query: "",
			setupMocks: func(m *MockPublicImageLister) {
				m.EXPECT().ListPublic(gomock.Any(), 50, 0).Return([]models.Image{{ID: uuid.New()}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "images",
		},
		{
			name:  "explicit paging",
			query: "?limit=5&offset=10",
			setupMocks: func(m *MockPublicImageLister) {
				m.EXPECT().ListPublic(gomock.Any(), 5, 10).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "images",
		},
		{
			name:               "bad limit",
			query:              "?limit=ten",
			setupMocks:         func(m *MockPublicImageLister) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:  "storage failure",
			query: "",
			setupMocks: func(m *MockPublicImageLister) {
				m.EXPECT().ListPublic(gomock.Any(), 50, 0).Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockPublicImageLister(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewListPublicImagesHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/images"+tt.query, nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			body := decodeJSON(t, rr)
			assert.Contains(t, body, tt.expectedKey)
			if tt.expectedKey == "images" {
				assert.NotNil(t, body["images"])
			}
		})
	}
}

func TestListUserImagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserImageLister(ctrl)
	handler := NewListUserImagesHandler(svc)

	// new user, no images
	svc.EXPECT().ListByUser(gomock.Any(), testUser.ID).Return(nil, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(newRequest(t, http.MethodGet, "/api/images/user", nil), testUser))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"images":[]}`, rr.Body.String())

	// no user in context
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/images/user", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateImageHandler(t *testing.T) {
	isPublic := false

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockImageCreator)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "created",
			requestBody: CreateImageRequest{FilePath: "https://cdn.example.com/a.png", Tags: []string{"fox"}, IsPublic: &isPublic},
			setupMocks: func(m *MockImageCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, img *models.NewImage) (*models.Image, error) {
						assert.Equal(t, testUser.ID, img.UserID)
						assert.Equal(t, models.Tags{"fox"}, img.Tags)
						assert.False(t, *img.IsPublic)
						return &models.Image{ID: uuid.New(), UserID: img.UserID, FilePath: img.FilePath}, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "image",
		},
		{
			name:               "missing file path",
			requestBody:        CreateImageRequest{},
			setupMocks:         func(m *MockImageCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "malformed body",
			requestBody:        "{not json",
			setupMocks:         func(m *MockImageCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "storage failure",
			requestBody: CreateImageRequest{FilePath: "x"},
			setupMocks: func(m *MockImageCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
		{
			name:        "service rejects input",
			requestBody: CreateImageRequest{FilePath: " "},
			setupMocks: func(m *MockImageCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidInput)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockImageCreator(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			req := withUser(newRequest(t, http.MethodPost, "/api/images", tt.requestBody), testUser)
			NewCreateImageHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Contains(t, decodeJSON(t, rr), tt.expectedKey)
		})
	}
}
