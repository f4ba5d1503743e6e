package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "review")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "review_db")
	t.Setenv("DB_SSLMODE", "disable")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_STREAM", "")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "review_db", cfg.Database.DBName)
	assert.Equal(t, "dev", cfg.Log.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Notify.RedisURL)
	assert.Equal(t, "review:notifications", cfg.Notify.RedisStream)
	assert.Equal(t,
		"host=localhost port=5432 user=review password=secret dbname=review_db sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}
