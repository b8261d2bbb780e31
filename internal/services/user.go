package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

// UserReader looks users up by their identity provider id.
type UserReader interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

// UserWriter inserts users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// UserService maps verified identities to local users.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Resolve returns the user for identity, creating it on first sight.
// A concurrent first request that wins the insert is read back.
func (s *UserService) Resolve(ctx context.Context, identity *models.Identity) (*models.User, error) {
	user, err := s.reader.GetByExternalID(ctx, identity.UID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "external_id", identity.UID, "error", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.writer.Create(ctx, &models.User{
		ExternalID:  identity.UID,
		Email:       optional(identity.Email),
		DisplayName: optional(identity.Name),
		AvatarURL:   optional(identity.Picture),
	})
	if errors.Is(err, repositories.ErrAlreadyExists) {
		return s.reader.GetByExternalID(ctx, identity.UID)
	}
	if err != nil {
		logger.Log.Errorw("failed to create user", "external_id", identity.UID, "error", err)
		return nil, err
	}

	logger.Log.Infow("user created", "user_id", user.ID, "external_id", identity.UID)
	return user, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
