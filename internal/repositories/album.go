package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// AlbumRepository stores albums and their image memberships.
type AlbumRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAlbumRepository(db *sqlx.DB, txGetter TxGetter) *AlbumRepository {
	return &AlbumRepository{db: db, txGetter: txGetter}
}

// Create inserts an album. A cover image is also added to the album, in the
// request transaction when there is one and in a local one otherwise.
// An unknown owner or cover image fails with ErrNotFound.
func (r *AlbumRepository) Create(ctx context.Context, album *models.NewAlbum) (*models.Album, error) {
	var created *models.Album
	err := r.inTx(ctx, func(ext sqlx.ExtContext) error {
		var err error
		created, err = r.insert(ctx, ext, album)
		if err != nil {
			return err
		}
		if album.CoverImageID == nil {
			return nil
		}
		if _, err := r.addImage(ctx, ext, created.ID, *album.CoverImageID); err != nil {
			return err
		}
		created.ImageCount = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *AlbumRepository) insert(ctx context.Context, ext sqlx.ExtContext, album *models.NewAlbum) (*models.Album, error) {
	query := `
		INSERT INTO albums (user_id, name, description, cover_image_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, description, cover_image_id, 0 AS image_count, created_at, updated_at
	`

	args := []any{album.UserID, album.Name, album.Description, album.CoverImageID}

	var created models.Album
	err := sqlx.GetContext(ctx, ext, &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// ListByUser returns the albums of a user with their image counts, newest first.
func (r *AlbumRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Album, error) {
	query := `
		SELECT a.id, a.user_id, a.name, a.description, a.cover_image_id, a.created_at, a.updated_at,
		       COUNT(ai.id) AS image_count
		FROM albums a
		LEFT JOIN album_images ai ON ai.album_id = a.id
		WHERE a.user_id = $1
		GROUP BY a.id
		ORDER BY a.created_at DESC, a.id DESC
	`

	albums := []models.Album{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &albums, query, userID)

	logQuery(query, []any{userID}, len(albums), err)

	if err != nil {
		return nil, mapError(err)
	}
	return albums, nil
}

// GetByID returns the album with its image count or ErrNotFound.
func (r *AlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Album, error) {
	query := `
		SELECT a.id, a.user_id, a.name, a.description, a.cover_image_id, a.created_at, a.updated_at,
		       COUNT(ai.id) AS image_count
		FROM albums a
		LEFT JOIN album_images ai ON ai.album_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`

	var album models.Album
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &album, query, id)

	logQuery(query, []any{id}, album.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &album, nil
}

// AddImage puts an image into an album. It reports false when the image was already there.
func (r *AlbumRepository) AddImage(ctx context.Context, albumID, imageID uuid.UUID) (bool, error) {
	return r.addImage(ctx, executor(ctx, r.db, r.txGetter), albumID, imageID)
}

func (r *AlbumRepository) addImage(ctx context.Context, ext sqlx.ExtContext, albumID, imageID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO album_images (album_id, image_id)
		VALUES ($1, $2)
		ON CONFLICT (album_id, image_id) DO NOTHING
	`

	args := []any{albumID, imageID}

	res, err := ext.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, mapError(err)
	}
	return rowsAffected > 0, nil
}

// ListImages returns the images of an album, most recently added first.
func (r *AlbumRepository) ListImages(ctx context.Context, albumID uuid.UUID) ([]models.Image, error) {
	query := `
		SELECT ` + imageColumnsQualified + `
		FROM images i
		JOIN album_images ai ON ai.image_id = i.id
		WHERE ai.album_id = $1
		ORDER BY ai.added_at DESC, i.id DESC
	`

	images := []models.Image{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &images, query, albumID)

	logQuery(query, []any{albumID}, len(images), err)

	if err != nil {
		return nil, mapError(err)
	}
	return images, nil
}

// inTx runs fn in the request transaction, or opens and finishes one of its own.
func (r *AlbumRepository) inTx(ctx context.Context, fn func(ext sqlx.ExtContext) error) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
