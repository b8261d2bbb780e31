package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

type CommentRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentRepository(db *sqlx.DB, txGetter TxGetter) *CommentRepository {
	return &CommentRepository{db: db, txGetter: txGetter}
}

// Create stores a comment. An unknown image fails with ErrNotFound.
func (r *CommentRepository) Create(ctx context.Context, userID, imageID uuid.UUID, content string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (user_id, image_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, image_id, content, created_at, updated_at
	`

	args := []any{userID, imageID, content}

	var comment models.Comment
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &comment, query, args...)

	logQuery(query, args, comment.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &comment, nil
}

// ListByImage returns the comments of an image, oldest first.
func (r *CommentRepository) ListByImage(ctx context.Context, imageID uuid.UUID) ([]models.Comment, error) {
	query := `
		SELECT id, user_id, image_id, content, created_at, updated_at
		FROM comments
		WHERE image_id = $1
		ORDER BY created_at ASC, id ASC
	`

	comments := []models.Comment{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &comments, query, imageID)

	logQuery(query, []any{imageID}, len(comments), err)

	if err != nil {
		return nil, mapError(err)
	}
	return comments, nil
}
