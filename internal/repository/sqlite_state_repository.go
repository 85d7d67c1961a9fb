package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

type SQLiteStateRepository struct {
	db  *sql.DB
	key string
}

func NewSQLiteStateRepository(db *sql.DB, key string) *SQLiteStateRepository {
	return &SQLiteStateRepository{db: db, key: key}
}

func (r *SQLiteStateRepository) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (r *SQLiteStateRepository) Load(ctx context.Context) (*models.State, error) {
	query := `SELECT value FROM app_state WHERE key = ?`

	var raw string
	err := r.db.QueryRowContext(ctx, query, r.key).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return decodeState([]byte(raw))
}

func (r *SQLiteStateRepository) Save(ctx context.Context, state *models.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	query := `INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
