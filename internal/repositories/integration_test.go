package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/phixelforge/internal/database"
	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := database.Open(ctx, dsn, database.PoolOptions{MaxOpenConns: 20, MaxIdleConns: 10, ConnMaxLifetime: 5 * time.Minute})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, repo *UserRepository, externalID string) *models.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &models.User{ExternalID: externalID})
	require.NoError(t, err)
	return user
}

func createImage(t *testing.T, repo *ImageRepository, userID uuid.UUID, path string) *models.Image {
	t.Helper()
	image, err := repo.Create(context.Background(), &models.NewImage{UserID: userID, FilePath: path})
	require.NoError(t, err)
	return image
}

func TestRepositories_Postgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	users := NewUserRepository(db, nil)
	images := NewImageRepository(db, nil)
	likes := NewLikeRepository(db, nil)
	albums := NewAlbumRepository(db, nil)
	comments := NewCommentRepository(db, nil)
	collections := NewCollectionRepository(db)

	t.Run("schema is re-runnable and seeds collections once", func(t *testing.T) {
		require.NoError(t, database.Migrate(ctx, db))

		list, err := collections.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Featured Images", list[0].Name)
		assert.True(t, list[0].IsFeatured)
	})

	t.Run("duplicate external id", func(t *testing.T) {
		createUser(t, users, "dup-uid")
		_, err := users.Create(ctx, &models.User{ExternalID: "dup-uid"})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		user, err := users.GetByExternalID(ctx, "dup-uid")
		require.NoError(t, err)
		require.NotNil(t, user)

		missing, err := users.GetByExternalID(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("new image is listed first exactly once", func(t *testing.T) {
		owner := createUser(t, users, "lister")
		older := createImage(t, images, owner.ID, "https://cdn/older.png")
		newer := createImage(t, images, owner.ID, "https://cdn/newer.png")

		assert.True(t, newer.IsPublic)
		assert.Equal(t, models.Tags{}, newer.Tags)

		page, err := images.ListPublic(ctx, 50, 0)
		require.NoError(t, err)

		seen := 0
		newerIdx, olderIdx := -1, -1
		for i, img := range page {
			if img.ID == newer.ID {
				seen++
				newerIdx = i
			}
			if img.ID == older.ID {
				olderIdx = i
			}
		}
		assert.Equal(t, 1, seen)
		assert.Less(t, newerIdx, olderIdx)
	})

	t.Run("private images stay out of the public list", func(t *testing.T) {
		owner := createUser(t, users, "private-owner")
		private := false
		img, err := images.Create(ctx, &models.NewImage{
			UserID:   owner.ID,
			FilePath: "https://cdn/private.png",
			Tags:     models.Tags{"secret"},
			IsPublic: &private,
		})
		require.NoError(t, err)
		assert.False(t, img.IsPublic)
		assert.Equal(t, models.Tags{"secret"}, img.Tags)

		page, err := images.ListPublic(ctx, 1000, 0)
		require.NoError(t, err)
		for _, p := range page {
			assert.NotEqual(t, img.ID, p.ID)
		}

		mine, err := images.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
	})

	t.Run("user without images gets an empty list", func(t *testing.T) {
		owner := createUser(t, users, "empty")
		list, err := images.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("toggling twice restores the like state", func(t *testing.T) {
		owner := createUser(t, users, "liker")
		other := createUser(t, users, "other-liker")
		img := createImage(t, images, owner.ID, "https://cdn/liked.png")

		_, err := likes.Toggle(ctx, other.ID, img.ID)
		require.NoError(t, err)

		before, err := likes.Status(ctx, img.ID, &owner.ID)
		require.NoError(t, err)
		assert.Equal(t, &models.LikeState{LikeCount: 1, IsLiked: false}, before)

		first, err := likes.Toggle(ctx, owner.ID, img.ID)
		require.NoError(t, err)
		assert.Equal(t, &models.LikeState{LikeCount: 2, IsLiked: true}, first)

		second, err := likes.Toggle(ctx, owner.ID, img.ID)
		require.NoError(t, err)
		assert.Equal(t, before, second)

		anonymous, err := likes.Status(ctx, img.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, &models.LikeState{LikeCount: 1, IsLiked: false}, anonymous)

		_, err = likes.Toggle(ctx, owner.ID, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("album without description", func(t *testing.T) {
		owner := createUser(t, users, "album-owner")

		album, err := albums.Create(ctx, &models.NewAlbum{UserID: owner.ID, Name: "Holidays"})
		require.NoError(t, err)
		assert.Nil(t, album.Description)
		assert.False(t, album.CoverImageID.Valid)

		list, err := albums.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, album.ID, list[0].ID)
		assert.Equal(t, 0, list[0].ImageCount)
	})

	t.Run("album cover joins the album and survives image deletion as null", func(t *testing.T) {
		owner := createUser(t, users, "cover-owner")
		cover := createImage(t, images, owner.ID, "https://cdn/cover.png")

		album, err := albums.Create(ctx, &models.NewAlbum{UserID: owner.ID, Name: "Covers", CoverImageID: &cover.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, album.ImageCount)

		added, err := albums.AddImage(ctx, album.ID, cover.ID)
		require.NoError(t, err)
		assert.False(t, added)

		inAlbum, err := albums.ListImages(ctx, album.ID)
		require.NoError(t, err)
		require.Len(t, inAlbum, 1)

		_, err = db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, cover.ID)
		require.NoError(t, err)

		reloaded, err := albums.GetByID(ctx, album.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.CoverImageID.Valid)
		assert.Equal(t, 0, reloaded.ImageCount)

		_, err = albums.Create(ctx, &models.NewAlbum{UserID: owner.ID, Name: "Broken", CoverImageID: &cover.ID})
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := albums.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("comments", func(t *testing.T) {
		owner := createUser(t, users, "commenter")
		img := createImage(t, images, owner.ID, "https://cdn/commented.png")

		c1, err := comments.Create(ctx, owner.ID, img.ID, "first")
		require.NoError(t, err)
		c2, err := comments.Create(ctx, owner.ID, img.ID, "second")
		require.NoError(t, err)

		list, err := comments.ListByImage(ctx, img.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, c1.ID, list[0].ID)
		assert.Equal(t, c2.ID, list[1].ID)

		_, err = comments.Create(ctx, owner.ID, uuid.New(), "orphan")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting a user cascades", func(t *testing.T) {
		owner := createUser(t, users, "doomed")
		img := createImage(t, images, owner.ID, "https://cdn/doomed.png")
		_, err := likes.Toggle(ctx, owner.ID, img.ID)
		require.NoError(t, err)
		_, err = albums.Create(ctx, &models.NewAlbum{UserID: owner.ID, Name: "Gone", CoverImageID: &img.ID})
		require.NoError(t, err)

		_, err = db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, owner.ID)
		require.NoError(t, err)

		_, err = images.GetByID(ctx, img.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		var likeRows int
		require.NoError(t, db.GetContext(ctx, &likeRows, `SELECT COUNT(*) FROM likes WHERE user_id = $1`, owner.ID))
		assert.Zero(t, likeRows)

		list, err := albums.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("collection images", func(t *testing.T) {
		owner := createUser(t, users, "curated")
		img := createImage(t, images, owner.ID, "https://cdn/curated.png")

		list, err := collections.List(ctx)
		require.NoError(t, err)
		featured := list[0]

		_, err = db.ExecContext(ctx, `INSERT INTO collection_images (collection_id, image_id) VALUES ($1, $2)`, featured.ID, img.ID)
		require.NoError(t, err)

		inCollection, err := collections.ListImages(ctx, featured.ID)
		require.NoError(t, err)
		require.Len(t, inCollection, 1)
		assert.Equal(t, img.ID, inCollection[0].ID)

		ok, err := collections.Exists(ctx, featured.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
