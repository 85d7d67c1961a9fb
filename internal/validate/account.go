// Package validate is the form boundary in front of the state service.
package validate

import (
	"strings"

	"github.com/riteshkumar/networth-tracker/internal/errors"
	"github.com/riteshkumar/networth-tracker/internal/models"
)

// NewAccount checks a create request and returns the draft to hand to the
// state service, which does no validation of its own.
func NewAccount(req *models.CreateAccountRequest) (models.AccountDraft, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.AccountDraft{}, errors.NewValidationError("name", "must be non-empty")
	}
	if !req.Type.Valid() {
		return models.AccountDraft{}, errors.NewValidationError("type", "must be asset or liability")
	}
	if req.Value == nil {
		return models.AccountDraft{}, errors.NewValidationError("value", "is required")
	}
	if req.Value.IsNegative() {
		return models.AccountDraft{}, errors.NewValidationError("value", "must be 0 or greater")
	}
	if req.Category == "" {
		return models.AccountDraft{}, errors.NewValidationError("category", "is required")
	}
	if !models.ValidCategory(req.Type, req.Category) {
		return models.AccountDraft{}, errors.NewValidationError("category", "is not valid for type "+string(req.Type))
	}

	return models.AccountDraft{
		Name:     name,
		Type:     req.Type,
		Category: req.Category,
		Value:    *req.Value,
	}, nil
}

// AccountUpdate overlays req on existing. Changing the type clears the
// category, so a type change must come with a category from the new set.
func AccountUpdate(existing models.Account, req *models.UpdateAccountRequest) (models.Account, error) {
	updated := existing

	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil && *req.Type != existing.Type {
		updated.Type = *req.Type
		updated.Category = ""
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Value != nil {
		updated.Value = *req.Value
	}

	if updated.Name == "" {
		return models.Account{}, errors.NewValidationError("name", "must be non-empty")
	}
	if !updated.Type.Valid() {
		return models.Account{}, errors.NewValidationError("type", "must be asset or liability")
	}
	if updated.Value.IsNegative() {
		return models.Account{}, errors.NewValidationError("value", "must be 0 or greater")
	}
	if updated.Category == "" {
		return models.Account{}, errors.NewValidationError("category", "is required")
	}
	if !models.ValidCategory(updated.Type, updated.Category) {
		return models.Account{}, errors.NewValidationError("category", "is not valid for type "+string(updated.Type))
	}
	return updated, nil
}
