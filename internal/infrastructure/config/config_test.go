package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/social")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestParseDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, 10, cfg.AsynqConcurrency)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.MediaUploadURL)
}

func TestParseOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ASYNQ_CONCURRENCY", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MEDIA_UPLOAD_URL", "https://media.example/upload")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 3, cfg.AsynqConcurrency)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "https://media.example/upload", cfg.MediaUploadURL)
}

func TestParseMissingRequired(t *testing.T) {
	for _, key := range []string{"DB_URL", "REDIS_URL", "JWT_SECRET"} {
		t.Setenv(key, "") // registers cleanup restoring the original value
		os.Unsetenv(key)
	}

	_, err := Parse()
	require.Error(t, err)
}
