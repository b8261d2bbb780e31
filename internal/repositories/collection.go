package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// CollectionRepository reads the curated collections. They are seeded with the schema.
type CollectionRepository struct {
	db *sqlx.DB
}

func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// List returns all collections, featured ones first.
func (r *CollectionRepository) List(ctx context.Context) ([]models.Collection, error) {
	const query = `
		SELECT c.id, c.name, c.description, c.is_featured, c.created_at,
		       COUNT(ci.id) AS image_count
		FROM collections c
		LEFT JOIN collection_images ci ON ci.collection_id = c.id
		GROUP BY c.id
		ORDER BY c.is_featured DESC, c.name ASC
	`

	collections := []models.Collection{}
	err := r.db.SelectContext(ctx, &collections, query)

	logQuery(query, nil, len(collections), err)

	if err != nil {
		return nil, mapError(err)
	}
	return collections, nil
}

// Exists reports whether the collection exists.
func (r *CollectionRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM collections WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logQuery(query, []any{id}, exists, err)

	if err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

// ListImages returns the public images of a collection, most recently added first.
func (r *CollectionRepository) ListImages(ctx context.Context, collectionID uuid.UUID) ([]models.Image, error) {
	query := `
		SELECT ` + imageColumnsQualified + `
		FROM images i
		JOIN collection_images ci ON ci.image_id = i.id
		WHERE ci.collection_id = $1 AND i.is_public = true
		ORDER BY ci.added_at DESC, i.id DESC
	`

	images := []models.Image{}
	err := r.db.SelectContext(ctx, &images, query, collectionID)

	logQuery(query, []any{collectionID}, len(images), err)

	if err != nil {
		return nil, mapError(err)
	}
	return images, nil
}
