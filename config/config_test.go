package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_ADDR", "DATABASE_URL", "REDIS_URL", "CATALOG_CACHE_TTL",
	"CALL_TIMEOUT", "DRAFT_IDLE_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW", "LOG_LEVEL",
}

// unsetAll clears the config variables for the test and restores them after.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetAll(t)

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.CallTimeout)
	assert.Equal(t, 30*time.Minute, cfg.DraftIdleTTL)
	assert.Equal(t, RateLimitConfig{Capacity: 30, Window: time.Minute}, cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://loan@localhost/loans")
	t.Setenv("CALL_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://loan@localhost/loans", cfg.DatabaseURL)
	assert.Equal(t, 3*time.Second, cfg.CallTimeout)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnv_MalformedValuesFallBack(t *testing.T) {
	unsetAll(t)
	t.Setenv("CATALOG_CACHE_TTL", "soon")
	t.Setenv("RATE_LIMIT_CAPACITY", "many")

	cfg := FromEnv()

	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 30, cfg.RateLimit.Capacity)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	unsetAll(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoad_ReadsEnvFileWithoutOverriding(t *testing.T) {
	unsetAll(t)
	t.Setenv("HTTP_ADDR", ":7070")

	path := filepath.Join(t.TempDir(), ".env")
	content := "HTTP_ADDR=:6060\nREDIS_URL=redis://localhost:6379/0\nLOG_LEVEL=warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
