package services

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// ObjectStore keeps uploaded files and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// UploadService validates image files and stores them.
type UploadService struct {
	store    ObjectStore
	maxBytes int64
	now      func() time.Time
}

// NewUploadService creates a new UploadService accepting files up to maxBytes.
func NewUploadService(store ObjectStore, maxBytes int64) *UploadService {
	return &UploadService{
		store:    store,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// Upload reads an image from r and stores it under uploads/<userID>/<unix-ms>-<name>.
func (s *UploadService) Upload(ctx context.Context, userID uuid.UUID, name string, r io.Reader) (*models.Upload, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrUploadTooLarge
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, ErrNotAnImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		logger.Log.Warnw("undecodable image upload", "user_id", userID, "mime_type", mime.String(), "error", err)
		return nil, ErrNotAnImage
	}

	key := fmt.Sprintf("uploads/%s/%d-%s", userID, s.now().UnixMilli(), cleanName(name, mime.Extension()))
	url, err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), mime.String())
	if err != nil {
		logger.Log.Errorw("failed to store upload", "key", key, "error", err)
		return nil, err
	}

	return &models.Upload{
		FilePath: url,
		FileSize: int64(len(data)),
		MimeType: mime.String(),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

// cleanName keeps the base name of a client file name, restricted to [A-Za-z0-9._-].
func cleanName(name, ext string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return "upload" + ext
	}
	return cleaned
}
