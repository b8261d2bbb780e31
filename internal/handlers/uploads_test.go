package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withUser(req, testUser)
}

func TestUploadHandler(t *testing.T) {
	content := []byte("\x89PNG fake")

	tests := []struct {
		name               string
		field              string
		setupMocks         func(m *MockUploader)
		expectedStatusCode int
	}{
		{
			name:  "stored",
			field: "file",
			setupMocks: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), testUser.ID, "cat.png", gomock.Any()).DoAndReturn(
					func(_ any, _ any, _ string, r io.Reader) (*models.Upload, error) {
						got, err := io.ReadAll(r)
						assert.NoError(t, err)
						assert.Equal(t, content, got)
						return &models.Upload{FilePath: "https://cdn.example.com/cat.png", FileSize: int64(len(got)), MimeType: "image/png", Width: 1, Height: 1}, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "missing file field",
			field:              "",
			setupMocks:         func(m *MockUploader) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:  "not an image",
			field: "file",
			setupMocks: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), testUser.ID, "cat.png", gomock.Any()).Return(nil, services.ErrNotAnImage)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:  "too large",
			field: "file",
			setupMocks: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), testUser.ID, "cat.png", gomock.Any()).Return(nil, services.ErrUploadTooLarge)
			},
			expectedStatusCode: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUploader(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewUploadHandler(svc, 1<<20).ServeHTTP(rr, multipartRequest(t, tt.field, "cat.png", content))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
