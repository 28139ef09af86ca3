package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/course-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// OpenPostgres connects to the test database and applies the migrations
// once per test binary. The pool is closed when t finishes.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", PostgresURL(t))
	require.NoError(t, err, "failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping database")

	migrateOnce.Do(func() {
		silent := slog.New(slog.NewTextHandler(io.Discard, nil))
		migrateErr = postgres.Migrate(context.Background(), db, postgres.MigrateUp, silent)
	})
	require.NoError(t, migrateErr, "failed to run migrations")

	return db
}
