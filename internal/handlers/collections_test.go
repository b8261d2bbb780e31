package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

func TestListCollectionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCollectionLister(ctrl)
	svc.EXPECT().List(gomock.Any()).Return([]models.Collection{{ID: uuid.New(), Name: "Featured", IsFeatured: true}}, nil)

	rr := httptest.NewRecorder()
	NewListCollectionsHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/collections", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeJSON(t, rr)["collections"], 1)
}

func TestListCollectionImagesHandler(t *testing.T) {
	known, unknown := uuid.New(), uuid.New()

	tests := []struct {
		name               string
		param              string
		setupMocks         func(m *MockCollectionImageLister)
		expectedStatusCode int
	}{
		{
			name:  "known collection",
			param: known.String(),
			setupMocks: func(m *MockCollectionImageLister) {
				m.EXPECT().ListImages(gomock.Any(), known).Return([]models.Image{{ID: uuid.New()}}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:  "unknown collection",
			param: unknown.String(),
			setupMocks: func(m *MockCollectionImageLister) {
				m.EXPECT().ListImages(gomock.Any(), unknown).Return(nil, services.ErrCollectionNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "malformed id",
			param:              "featured",
			setupMocks:         func(m *MockCollectionImageLister) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCollectionImageLister(ctrl)
			tt.setupMocks(svc)

			req := withURLParam(newRequest(t, http.MethodGet, "/", nil), "collectionID", tt.param)
			rr := httptest.NewRecorder()
			NewListCollectionImagesHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
