package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riteshkumar/networth-tracker/internal/errors"
	"github.com/riteshkumar/networth-tracker/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestNewAccount(t *testing.T) {
	valid := func() models.CreateAccountRequest {
		return models.CreateAccountRequest{
			Name:     "  Brokerage ",
			Type:     models.AccountTypeAsset,
			Category: "Investments",
			Value:    ptr(decimal.RequireFromString("1200.50")),
		}
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid()
		draft, err := NewAccount(&req)
		require.NoError(t, err)
		assert.Equal(t, "Brokerage", draft.Name)
		assert.Equal(t, models.AccountTypeAsset, draft.Type)
		assert.True(t, decimal.RequireFromString("1200.50").Equal(draft.Value))
	})

	tests := []struct {
		name   string
		mutate func(*models.CreateAccountRequest)
		field  string
	}{
		{"blank name", func(r *models.CreateAccountRequest) { r.Name = " \t" }, "name"},
		{"bad type", func(r *models.CreateAccountRequest) { r.Type = "equity" }, "type"},
		{"missing value", func(r *models.CreateAccountRequest) { r.Value = nil }, "value"},
		{"negative value", func(r *models.CreateAccountRequest) { r.Value = ptr(decimal.NewFromInt(-1)) }, "value"},
		{"missing category", func(r *models.CreateAccountRequest) { r.Category = "" }, "category"},
		{"liability category on asset", func(r *models.CreateAccountRequest) { r.Category = "Mortgage" }, "category"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(&req)

			_, err := NewAccount(&req)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestAccountUpdate(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := models.Account{
		ID:        "acct-1",
		Name:      "Brokerage",
		Type:      models.AccountTypeAsset,
		Category:  "Investments",
		Value:     decimal.NewFromInt(1000),
		CreatedAt: created,
		UpdatedAt: created,
	}

	t.Run("empty request changes nothing", func(t *testing.T) {
		got, err := AccountUpdate(existing, &models.UpdateAccountRequest{})
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("identity fields are kept", func(t *testing.T) {
		got, err := AccountUpdate(existing, &models.UpdateAccountRequest{
			Name:  ptr(" Index fund "),
			Value: ptr(decimal.NewFromInt(0)),
		})
		require.NoError(t, err)
		assert.Equal(t, "acct-1", got.ID)
		assert.Equal(t, created, got.CreatedAt)
		assert.Equal(t, "Index fund", got.Name)
		assert.True(t, got.Value.IsZero())
	})

	t.Run("same type keeps the category", func(t *testing.T) {
		got, err := AccountUpdate(existing, &models.UpdateAccountRequest{Type: ptr(models.AccountTypeAsset)})
		require.NoError(t, err)
		assert.Equal(t, "Investments", got.Category)
	})

	t.Run("type change clears the category", func(t *testing.T) {
		_, err := AccountUpdate(existing, &models.UpdateAccountRequest{Type: ptr(models.AccountTypeLiability)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("type change with a matching category", func(t *testing.T) {
		got, err := AccountUpdate(existing, &models.UpdateAccountRequest{
			Type:     ptr(models.AccountTypeLiability),
			Category: ptr("Personal Loan"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.AccountTypeLiability, got.Type)
		assert.Equal(t, "Personal Loan", got.Category)
	})

	t.Run("rejections", func(t *testing.T) {
		for _, req := range []models.UpdateAccountRequest{
			{Name: ptr("   ")},
			{Type: ptr(models.AccountType("equity"))},
			{Value: ptr(decimal.NewFromInt(-10))},
			{Category: ptr("Mortgage")},
		} {
			_, err := AccountUpdate(existing, &req)
			assert.True(t, errors.IsValidationError(err), "request %+v", req)
		}
	})
}
