package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.CallbackURL)
	assert.Equal(t, ":8080", cfg.CallbackAddr)
	assert.Equal(t, "/", cfg.CallbackPath)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestLoad_EnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("LOG_DIR=/tmp/yt-logs\nCACHE_TTL=30s\nCACHE_SIZE=8\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_DIR")
		os.Unsetenv("CACHE_TTL")
		os.Unsetenv("CACHE_SIZE")
	})

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/yt-logs", cfg.LogDir)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 8, cfg.CacheSize)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("LOG_LEVEL=error\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "CACHE_TTL", "soon"},
		{"bad size", "CACHE_SIZE", "many"},
		{"negative size", "CACHE_SIZE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
