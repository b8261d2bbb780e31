package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

// LikeRepository stores (user, image) likes.
type LikeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeRepository(db *sqlx.DB, txGetter TxGetter) *LikeRepository {
	return &LikeRepository{db: db, txGetter: txGetter}
}

// Toggle removes the like if present, otherwise adds it, in one statement.
// All CTEs share the statement snapshot, so the count is corrected by the rows
// deleted and inserted here. A concurrent toggle losing the insert race still
// reports the image as liked. An unknown image fails with ErrNotFound.
func (r *LikeRepository) Toggle(ctx context.Context, userID, imageID uuid.UUID) (*models.LikeState, error) {
	query := `
		WITH deleted AS (
			DELETE FROM likes
			WHERE user_id = $1 AND image_id = $2
			RETURNING 1
		), inserted AS (
			INSERT INTO likes (user_id, image_id)
			SELECT $1::uuid, $2::uuid
			WHERE NOT EXISTS (SELECT 1 FROM deleted)
			ON CONFLICT (user_id, image_id) DO NOTHING
			RETURNING 1
		)
		SELECT
			NOT EXISTS (SELECT 1 FROM deleted) AS is_liked,
			(SELECT COUNT(*) FROM likes WHERE image_id = $2)
				+ (SELECT COUNT(*) FROM inserted)
				- (SELECT COUNT(*) FROM deleted) AS like_count
	`

	args := []any{userID, imageID}

	var state models.LikeState
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &state, query, args...)

	logQuery(query, args, state, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &state, nil
}

// Status returns the like count of an image and whether userID likes it.
// A nil userID is never counted as liking.
func (r *LikeRepository) Status(ctx context.Context, imageID uuid.UUID, userID *uuid.UUID) (*models.LikeState, error) {
	query := `
		SELECT
			COUNT(*) AS like_count,
			COALESCE(BOOL_OR(user_id = $2), false) AS is_liked
		FROM likes
		WHERE image_id = $1
	`

	args := []any{imageID, userID}

	var state models.LikeState
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &state, query, args...)

	logQuery(query, args, state, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &state, nil
}
