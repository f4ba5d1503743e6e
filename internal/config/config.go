// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Notify   NotifyConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LogConfig selects the log format and level.
type LogConfig struct {
	Env   string
	Level string
}

// NotifyConfig selects where reviewer notifications go. An empty RedisURL
// keeps them in the application log.
type NotifyConfig struct {
	RedisURL    string
	RedisStream string
}

// Load reads configuration from environment variables, after loading .env if present.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Log: LogConfig{
			Env:   getEnv("APP_ENV", "dev"),
			Level: os.Getenv("LOG_LEVEL"),
		},
		Notify: NotifyConfig{
			RedisURL:    os.Getenv("REDIS_URL"),
			RedisStream: getEnv("REDIS_STREAM", "review:notifications"),
		},
	}

	required := []struct {
		key string
		dst *string
	}{
		{"SERVER_HOST", &cfg.Server.Host},
		{"SERVER_PORT", &cfg.Server.Port},
		{"DB_HOST", &cfg.Database.Host},
		{"DB_PORT", &cfg.Database.Port},
		{"DB_USER", &cfg.Database.User},
		{"DB_PASSWORD", &cfg.Database.Password},
		{"DB_NAME", &cfg.Database.DBName},
		{"DB_SSLMODE", &cfg.Database.SSLMode},
	}

	for _, r := range required {
		value, err := getRequiredEnv(r.key)
		if err != nil {
			return nil, err
		}
		*r.dst = value
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
