package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

const userColumns = `id, external_id, email, display_name, avatar_url, created_at, updated_at`

// UserRepository reads and writes users keyed by identity-provider id.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// Create inserts a user. A duplicate external id fails with ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (external_id, email, display_name, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	args := []any{user.ExternalID, user.Email, user.DisplayName, user.AvatarURL}

	var created models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// GetByExternalID returns the user or nil when there is none.
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE external_id = $1
	`

	var users []models.User
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, externalID)

	logQuery(query, []any{externalID}, len(users), err)

	if err != nil {
		return nil, mapError(err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
