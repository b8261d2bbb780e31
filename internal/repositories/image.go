package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

const imageColumns = `id, user_id, title, description, file_path, file_size, mime_type,
	width, height, tags, is_public, created_at, updated_at`

const imageColumnsQualified = `i.id, i.user_id, i.title, i.description, i.file_path, i.file_size, i.mime_type,
	i.width, i.height, i.tags, i.is_public, i.created_at, i.updated_at`

// ImageRepository stores image metadata.
type ImageRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewImageRepository(db *sqlx.DB, txGetter TxGetter) *ImageRepository {
	return &ImageRepository{db: db, txGetter: txGetter}
}

// Create inserts an image and returns the stored row. Images are public unless IsPublic says otherwise.
// An unknown owner fails with ErrNotFound.
func (r *ImageRepository) Create(ctx context.Context, image *models.NewImage) (*models.Image, error) {
	query := `
		INSERT INTO images (user_id, title, description, file_path, file_size, mime_type, width, height, tags, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, COALESCE($10, true))
		RETURNING ` + imageColumns

	args := []any{
		image.UserID, image.Title, image.Description, image.FilePath, image.FileSize,
		image.MimeType, image.Width, image.Height, image.Tags, image.IsPublic,
	}

	var created models.Image
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// GetByID returns the image or ErrNotFound.
func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE id = $1
	`

	var image models.Image
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &image, query, id)

	logQuery(query, []any{id}, image.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &image, nil
}

// ListByUser returns all images of a user, newest first.
func (r *ImageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Image, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	images := []models.Image{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &images, query, userID)

	logQuery(query, []any{userID}, len(images), err)

	if err != nil {
		return nil, mapError(err)
	}
	return images, nil
}

// ListPublic returns one page of public images, newest first.
func (r *ImageRepository) ListPublic(ctx context.Context, limit, offset int) ([]models.Image, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE is_public = true
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	images := []models.Image{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &images, query, limit, offset)

	logQuery(query, []any{limit, offset}, len(images), err)

	if err != nil {
		return nil, mapError(err)
	}
	return images, nil
}
