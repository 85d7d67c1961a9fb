package config

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riteshkumar/networth-tracker/internal/repository"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "STORE_BACKEND", "STORE_KEY", "DATA_FILE",
		"DB_HOST", "DB_NAME", "SQLITE_PATH", "REDIS_ADDR", "REDIS_DB",
	} {
		t.Setenv(key, "") // registers the restore on cleanup
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, repository.BackendFile, cfg.StoreBackend)
	assert.Equal(t, repository.DefaultStateKey, cfg.StoreKey)
	assert.Equal(t, "networth.json", cfg.DataFile)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "networth", cfg.DBName)
	assert.Equal(t, "networth.db", cfg.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("STORE_KEY", "tracker")
	t.Setenv("DATA_FILE", "/tmp/nw.json")
	t.Setenv("SQLITE_PATH", "/tmp/nw.db")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.LogLevel)

	store := cfg.Store()
	assert.Equal(t, repository.BackendRedis, store.Backend)
	assert.Equal(t, "tracker", store.Key)
	assert.Equal(t, "/tmp/nw.json", store.FilePath)
	assert.Equal(t, "/tmp/nw.db", store.SQLitePath)
	assert.Equal(t, "cache:6379", store.RedisAddr)
	assert.Equal(t, "secret", store.RedisPassword)
	assert.Equal(t, 3, store.RedisDB)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvFallsBack(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("NETWORTH_TEST_UNSET_VARIABLE", "fallback"))

	t.Setenv("NETWORTH_TEST_SET_VARIABLE", "value")
	assert.Equal(t, "value", getEnv("NETWORTH_TEST_SET_VARIABLE", "fallback"))
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"key":"value"`)
}
