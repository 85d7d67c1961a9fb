package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

// FileStateRepository keeps the state blob in a single JSON file. The file
// path plays the role of the storage key.
type FileStateRepository struct {
	path string
}

func NewFileStateRepository(path string) *FileStateRepository {
	return &FileStateRepository{path: path}
}

func (r *FileStateRepository) Load(ctx context.Context) (*models.State, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return decodeState(data)
}

// Save writes to a temporary file first and renames it over the target, so a
// crash mid-write never leaves a truncated blob behind.
func (r *FileStateRepository) Save(ctx context.Context, state *models.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
