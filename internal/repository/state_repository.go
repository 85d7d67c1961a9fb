package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

// DefaultStateKey is the single fixed key the whole state blob lives under.
const DefaultStateKey = "@net_worth_tracker_v1"

// StateRepository stores the complete {accounts, snapshots} document as one
// opaque blob. A missing blob loads as an empty state without error.
type StateRepository interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
}

func encodeState(state *models.State) ([]byte, error) {
	st := state.Clone()
	st.Normalize()
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (*models.State, error) {
	if len(data) == 0 {
		return models.NewState(), nil
	}
	var st models.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	st.Normalize()
	return &st, nil
}
