package service_test

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the test database, applies the schema and empties
// all tables. Tests are skipped when TEST_DB_HOST is not set.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "review_user"),
		getEnv("TEST_DB_PASSWORD", "review_password"),
		getEnv("TEST_DB_NAME", "review_db"),
	)
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_init.up.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	cleanup := func() {
		_, _ = db.Exec("TRUNCATE TABLE documents, versions, users CASCADE")
	}
	cleanup()
	t.Cleanup(func() {
		cleanup()
		_ = db.Close()
	})

	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
