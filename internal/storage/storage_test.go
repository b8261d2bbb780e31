package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockMinioClient(ctrl)
	store := NewWithClient(client, "images", "https://cdn.example.com/images/")

	client.EXPECT().
		PutObject(gomock.Any(), "images", "uploads/u1/1-my cat.png", gomock.Any(), int64(4), minio.PutObjectOptions{ContentType: "image/png"}).
		Return(minio.UploadInfo{Size: 4}, nil)

	url, err := store.Put(context.Background(), "uploads/u1/1-my cat.png", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/uploads/u1/1-my%20cat.png", url)
}

func TestStore_Put_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockMinioClient(ctrl)
	store := NewWithClient(client, "images", "https://cdn.example.com")

	client.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	url, err := store.Put(context.Background(), "k", strings.NewReader("x"), 1, "image/png")
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestStore_EnsureBucket(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *MockMinioClient)
		wantErr bool
	}{
		{
			name: "exists",
			setup: func(c *MockMinioClient) {
				c.EXPECT().BucketExists(gomock.Any(), "images").Return(true, nil)
			},
		},
		{
			name: "created",
			setup: func(c *MockMinioClient) {
				c.EXPECT().BucketExists(gomock.Any(), "images").Return(false, nil)
				c.EXPECT().MakeBucket(gomock.Any(), "images", gomock.Any()).Return(nil)
			},
		},
		{
			name: "lookup fails",
			setup: func(c *MockMinioClient) {
				c.EXPECT().BucketExists(gomock.Any(), "images").Return(false, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := NewMockMinioClient(ctrl)
			tt.setup(client)

			err := NewWithClient(client, "images", "http://localhost:9000/images").EnsureBucket(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_DefaultPublicURL(t *testing.T) {
	store, err := New(Options{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "images"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/images/k.png", store.URL("k.png"))
}
