package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

// undefined_table
const pqUndefinedTable = "42P01"

type PostgresStateRepository struct {
	db  *sql.DB
	key string
}

func NewPostgresStateRepository(db *sql.DB, key string) *PostgresStateRepository {
	return &PostgresStateRepository{db: db, key: key}
}

// EnsureSchema creates the key-value table holding the state blob.
func (r *PostgresStateRepository) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (r *PostgresStateRepository) Load(ctx context.Context) (*models.State, error) {
	query := `SELECT value FROM app_state WHERE key = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, r.key).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewState(), nil
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUndefinedTable {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return decodeState(raw)
}

func (r *PostgresStateRepository) Save(ctx context.Context, state *models.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	query := `INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
