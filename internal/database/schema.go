package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/logger"
)

// Schema holds the DDL statements in execution order. Every statement is idempotent.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		external_id VARCHAR(255) NOT NULL UNIQUE,
		email VARCHAR(255),
		display_name VARCHAR(255),
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(255),
		description TEXT,
		file_path TEXT NOT NULL,
		file_size BIGINT,
		mime_type VARCHAR(100),
		width INTEGER,
		height INTEGER,
		tags JSONB NOT NULL DEFAULT '[]'::jsonb,
		is_public BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT,
		is_featured BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE TABLE IF NOT EXISTS collection_images (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		collection_id UUID NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
		image_id UUID NOT NULL REFERENCES images(id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		UNIQUE (collection_id, image_id)
	)`,
	`CREATE TABLE IF NOT EXISTS albums (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		cover_image_id UUID REFERENCES images(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE TABLE IF NOT EXISTS album_images (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		album_id UUID NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
		image_id UUID NOT NULL REFERENCES images(id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		UNIQUE (album_id, image_id)
	)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image_id UUID NOT NULL REFERENCES images(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		UNIQUE (user_id, image_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image_id UUID NOT NULL REFERENCES images(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_images_user_id ON images(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_images_created_at ON images(created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_images_is_public ON images(is_public)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_user_id ON likes(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_image_id ON likes(image_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_image_id ON comments(image_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_albums_user_id ON albums(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_album_images_album_id ON album_images(album_id)`,
	`CREATE INDEX IF NOT EXISTS idx_collection_images_collection_id ON collection_images(collection_id)`,
	`INSERT INTO collections (name, description, is_featured) VALUES
		('Featured Images', 'Our best AI-generated images', true),
		('Nature Collection', 'Beautiful nature scenes', false),
		('Abstract Art', 'Creative abstract compositions', false)
	ON CONFLICT (name) DO NOTHING`,
}

// Migrate creates the tables and indexes and seeds the default collections.
// Running it against an initialized database changes nothing.
func Migrate(ctx context.Context, db sqlx.ExecerContext) error {
	for i, stmt := range Schema {
		_, err := db.ExecContext(ctx, stmt)

		logger.Log.Debugw(
			"query", strings.Join(strings.Fields(stmt), " "),
			"error", err,
		)

		if err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}

	logger.Log.Infow("database schema is up to date", "statements", len(Schema))
	return nil
}
