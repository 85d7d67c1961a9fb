package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/riteshkumar/networth-tracker/internal/errors"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

type StoreConfig struct {
	Backend string
	Key     string

	FilePath string

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

// Open builds the StateRepository selected by cfg.Backend. The returned close
// function releases any connection the backend holds.
func Open(ctx context.Context, cfg StoreConfig) (StateRepository, func() error, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultStateKey
	}

	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStateRepository(cfg.FilePath), func() error { return nil }, nil

	case BackendPostgres:
		db, err := connectPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := NewPostgresStateRepository(db, key)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case BackendSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// single writer; sqlite serialises writes anyway
		db.SetMaxOpenConns(1)
		repo := NewSQLiteStateRepository(db, key)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return NewRedisStateRepository(client, key), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, cfg.Backend)
	}
}

// connectPostgres establishes a connection to the Postgres database
func connectPostgres(ctx context.Context, cfg StoreConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// one blob, one writer: a small pool is plenty
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(10 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
