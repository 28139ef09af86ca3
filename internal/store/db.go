package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB and *sql.Tx the SQL stores use, so a store
// can run against a pool in production and a rolled-back transaction in
// tests.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
