package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

func fixtureState() *models.State {
	created := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	savings := models.Account{
		ID:        "0192f1a0-0000-7000-8000-000000000001",
		Name:      "Chase Savings",
		Type:      models.AccountTypeAsset,
		Category:  "Cash & Savings",
		Value:     decimal.RequireFromString("5000"),
		CreatedAt: created,
		UpdatedAt: created,
	}
	visa := models.Account{
		ID:        "0192f1a0-0000-7000-8000-000000000002",
		Name:      "Visa",
		Type:      models.AccountTypeLiability,
		Category:  "Credit Card",
		Value:     decimal.RequireFromString("1200.55"),
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
	return &models.State{
		Accounts: []models.Account{savings, visa},
		Snapshots: []models.Snapshot{{
			ID:               "0192f1a0-0000-7000-8000-000000000003",
			Date:             created.Add(2 * time.Hour),
			NetWorth:         decimal.RequireFromString("3799.45"),
			TotalAssets:      decimal.RequireFromString("5000"),
			TotalLiabilities: decimal.RequireFromString("1200.55"),
			Accounts:         []models.Account{savings, visa},
		}},
	}
}

// assertSameState compares two states by their encoded form, which is what the
// backends persist.
func assertSameState(t *testing.T, want, got *models.State) {
	t.Helper()
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := fixtureState()

	data, err := encodeState(orig)
	require.NoError(t, err)

	decoded, err := decodeState(data)
	require.NoError(t, err)
	assertSameState(t, orig, decoded)
	assert.True(t, decoded.Snapshots[0].Date.Equal(orig.Snapshots[0].Date))
}

func TestDecodeState(t *testing.T) {
	t.Run("empty input is an empty state", func(t *testing.T) {
		st, err := decodeState(nil)
		require.NoError(t, err)
		assert.Empty(t, st.Accounts)
		assert.Empty(t, st.Snapshots)
	})

	t.Run("missing collections are normalised", func(t *testing.T) {
		st, err := decodeState([]byte(`{}`))
		require.NoError(t, err)
		assert.NotNil(t, st.Accounts)
		assert.NotNil(t, st.Snapshots)
	})

	t.Run("malformed input fails", func(t *testing.T) {
		_, err := decodeState([]byte(`{"accounts":`))
		assert.Error(t, err)
	})
}
