package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/riteshkumar/networth-tracker/internal/repository"
)

type Config struct {
	ServerPort string
	LogLevel   string

	StoreBackend string
	StoreKey     string
	DataFile     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreBackend:  getEnv("STORE_BACKEND", repository.BackendFile),
		StoreKey:      getEnv("STORE_KEY", repository.DefaultStateKey),
		DataFile:      getEnv("DATA_FILE", "networth.json"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "networth"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "networth.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
	}
	return cfg, nil
}

// Store returns the repository settings for the configured backend.
func (c Config) Store() repository.StoreConfig {
	return repository.StoreConfig{
		Backend:       c.StoreBackend,
		Key:           c.StoreKey,
		FilePath:      c.DataFile,
		DBHost:        c.DBHost,
		DBPort:        c.DBPort,
		DBUser:        c.DBUser,
		DBPassword:    c.DBPassword,
		DBName:        c.DBName,
		DBSSLMode:     c.DBSSLMode,
		SQLitePath:    c.SQLitePath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}

// ParseLogLevel maps debug, info, warn and error to a slog level. Anything
// else falls back to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the JSON logger every binary writes with.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	}))
}

// getEnv fetches environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
