// Package postgres provides PostgreSQL implementations of the identity,
// course and purchase stores defined in internal/store, together with the
// embedded goose migrations that create their tables.
//
// Stores accept a store.DBTX so the same code runs against a *sql.DB pool
// in production and a rolled-back *sql.Tx in tests. The pgx stdlib driver
// must be registered by the caller (cmd/server imports it).
package postgres
