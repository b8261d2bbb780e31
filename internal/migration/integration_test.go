package migration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/phixelforge/internal/database"
	"github.com/sbilibin2017/phixelforge/internal/docstore"
	"github.com/sbilibin2017/phixelforge/internal/logger"
	"github.com/sbilibin2017/phixelforge/internal/models"
	"github.com/sbilibin2017/phixelforge/internal/repositories"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	logger.Initialize("debug")
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := database.Open(ctx, dsn, database.PoolOptions{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrator_Integration(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	docs := docstore.New(rdb)
	for _, rec := range []models.ImageRecord{
		{UserID: "legacy-1", Prompt: "a cat wearing a hat", ImageData: "iVBORw0KGgo=", CreatedAt: 1000},
		{UserID: "legacy-1", Prompt: "a dog", ImageData: "data:image/webp;base64,UklGRg==", CreatedAt: 2000},
		{UserID: "legacy-2", Prompt: "sunset", ImageData: "AA==", CreatedAt: 3000},
	} {
		_, err := docs.Save(ctx, rec)
		require.NoError(t, err)
	}

	migrator := New(
		SchemaFunc(func(ctx context.Context) error { return database.Migrate(ctx, db) }),
		docs,
		repositories.NewUserRepository(db, nil),
		repositories.NewImageRepository(db, nil),
	)

	dry, err := migrator.DryRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Report{Found: 3}, dry)

	report, err := migrator.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Report{Found: 3, Migrated: 3, UsersCreated: 2}, report)

	var email string
	require.NoError(t, db.GetContext(ctx, &email, `SELECT email FROM users WHERE external_id = 'legacy-1'`))
	assert.Equal(t, "user-legacy-1@migrated.com", email)

	var paths []string
	require.NoError(t, db.SelectContext(ctx, &paths, `SELECT file_path FROM images ORDER BY created_at`))
	assert.Equal(t, []string{
		"data:image/png;base64,iVBORw0KGgo=",
		"data:image/webp;base64,UklGRg==",
		"data:image/png;base64,AA==",
	}, paths)

	// A second run reuses the users and inserts the images again.
	report, err = migrator.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Report{Found: 3, Migrated: 3, UsersReused: 2}, report)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM images`))
	assert.Equal(t, 6, count)
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 2, count)
}
