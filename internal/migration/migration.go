// Package migration copies image documents from the legacy Redis store into PostgreSQL.
//
// The copy is one-shot and not idempotent: every run inserts a new image row
// per document. Per-document failures are logged and counted, and the run goes on.
package migration

//go:generate mockgen -source=migration.go -destination=migration_mock.go -package=migration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
	"github.com/sbilibin2017/phixelforge/internal/services"
)

const defaultMimeType = "image/png"

// DocumentSource enumerates legacy image documents.
type DocumentSource interface {
	List(ctx context.Context) ([]models.ImageRecord, error)
	Count(ctx context.Context) (int64, error)
}

// UserStore reads and creates users.
type UserStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// ImageWriter inserts images.
type ImageWriter interface {
	Create(ctx context.Context, image *models.NewImage) (*models.Image, error)
}

// SchemaEnsurer creates the relational schema when missing.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// SchemaFunc adapts a plain function to SchemaEnsurer.
type SchemaFunc func(ctx context.Context) error

func (f SchemaFunc) EnsureSchema(ctx context.Context) error { return f(ctx) }

// Report summarizes a run.
type Report struct {
	Found        int `json:"found"`
	Migrated     int `json:"migrated"`
	UsersCreated int `json:"users_created"`
	UsersReused  int `json:"users_reused"`
	Failed       int `json:"failed"`
}

func (r Report) String() string {
	return fmt.Sprintf("found=%d migrated=%d users_created=%d users_reused=%d failed=%d",
		r.Found, r.Migrated, r.UsersCreated, r.UsersReused, r.Failed)
}

type Migrator struct {
	schema SchemaEnsurer
	source DocumentSource
	users  UserStore
	images ImageWriter
}

func New(schema SchemaEnsurer, source DocumentSource, users UserStore, images ImageWriter) *Migrator {
	return &Migrator{
		schema: schema,
		source: source,
		users:  users,
		images: images,
	}
}

// DryRun only counts the legacy documents.
func (m *Migrator) DryRun(ctx context.Context) (*Report, error) {
	n, err := m.source.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}
	logger.Log.Infow("dry run", "found", n)
	return &Report{Found: int(n)}, nil
}

// Run ensures the schema and copies every legacy document.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	logger.Log.Info("starting migration from the legacy document store")

	if err := m.schema.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	docs, err := m.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	report := &Report{Found: len(docs)}
	logger.Log.Infow("documents found", "count", len(docs))
	if len(docs) == 0 {
		return report, nil
	}

	owners := make(map[string]uuid.UUID)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		userID, ok := owners[doc.UserID]
		if !ok {
			user, created, err := m.resolveOwner(ctx, doc.UserID)
			if err != nil {
				logger.Log.Errorw("failed to resolve owner", "doc_id", doc.ID, "legacy_user_id", doc.UserID, "error", err)
				report.Failed++
				continue
			}
			if created {
				report.UsersCreated++
			} else {
				report.UsersReused++
			}
			userID = user.ID
			owners[doc.UserID] = userID
		}

		image, err := m.images.Create(ctx, newImage(userID, doc))
		if err != nil {
			logger.Log.Errorw("failed to migrate image", "doc_id", doc.ID, "error", err)
			report.Failed++
			continue
		}

		report.Migrated++
		logger.Log.Infow("migrated image", "doc_id", doc.ID, "image_id", image.ID)
	}

	logger.Log.Infow("migration completed", "report", report.String())
	return report, nil
}

// resolveOwner returns the user for a legacy id, creating a placeholder user when absent.
func (m *Migrator) resolveOwner(ctx context.Context, legacyID string) (*models.User, bool, error) {
	user, err := m.users.GetByExternalID(ctx, legacyID)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	email := fmt.Sprintf("user-%s@migrated.com", legacyID)
	name := "User " + prefix(legacyID, 8)
	user, err = m.users.Create(ctx, &models.User{
		ExternalID:  legacyID,
		Email:       &email,
		DisplayName: &name,
	})
	if errors.Is(err, repositories.ErrAlreadyExists) {
		user, err = m.users.GetByExternalID(ctx, legacyID)
		if err == nil && user == nil {
			err = repositories.ErrNotFound
		}
		return user, false, err
	}
	if err != nil {
		return nil, false, err
	}

	logger.Log.Infow("created user", "user_id", user.ID, "legacy_user_id", legacyID)
	return user, true, nil
}

func newImage(userID uuid.UUID, doc models.ImageRecord) *models.NewImage {
	title, tags := services.DescribePrompt(doc.Prompt)
	description := doc.Prompt
	filePath := DataURI(doc.ImageData)
	mimeType := services.MimeTypeFromDataURI(filePath, defaultMimeType)

	return &models.NewImage{
		UserID:      userID,
		Title:       &title,
		Description: &description,
		FilePath:    filePath,
		MimeType:    &mimeType,
		Tags:        tags,
	}
}

// DataURI wraps a raw base64 PNG payload as a data URI. Payloads that already
// are data URIs are returned unchanged.
func DataURI(payload string) string {
	if strings.HasPrefix(payload, "data:") {
		return payload
	}
	return "data:" + defaultMimeType + ";base64," + payload
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
