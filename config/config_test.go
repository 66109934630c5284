package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_HOST", "dbhost")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "scanner")
	os.Setenv("DB_PASSWORD", "scannerpass")
	os.Setenv("DB_NAME", "dalilscan_test")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_URL", "redis://redis:6379")
	defer func() {
		for _, name := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "REDIS_URL"} {
			os.Unsetenv(name)
		}
	}()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "dbhost", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "scanner", cfg.DBUser)
	assert.Equal(t, "scannerpass", cfg.DBPassword)
	assert.Equal(t, "dalilscan_test", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://redis:6379", cfg.RedisURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	for _, name := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "REDIS_URL", "SERVER_PORT"} {
		os.Unsetenv(name)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "dalilscan", cfg.DBName)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestValidateConfigMissingPassword(t *testing.T) {
	cfg := &Config{
		ServerPort: "8080",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBName:     "dalilscan",
		RedisURL:   "redis://localhost:6379",
		JWTSecret:  "secret",
	}
	err := ValidateConfig(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
