package testdb

import (
	"os"
	"testing"
)

// Environment variables naming the test servers.
const (
	PostgresURLEnv = "COURSE_TEST_POSTGRES_URL"
	MongoURLEnv    = "COURSE_TEST_MONGO_URL"
)

// PostgresURL returns the test Postgres URL, skipping t when it is unset.
func PostgresURL(t testing.TB) string {
	t.Helper()
	return requireEnv(t, PostgresURLEnv)
}

// MongoURL returns the test MongoDB URL, skipping t when it is unset.
func MongoURL(t testing.TB) string {
	t.Helper()
	return requireEnv(t, MongoURLEnv)
}

func requireEnv(t testing.TB, name string) string {
	t.Helper()
	value := os.Getenv(name)
	if value == "" {
		t.Skipf("%s not set; skipping database test", name)
	}
	return value
}
