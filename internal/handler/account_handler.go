package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/riteshkumar/networth-tracker/internal/errors"
	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/service"
	u "github.com/riteshkumar/networth-tracker/internal/utils"
	"github.com/riteshkumar/networth-tracker/internal/validate"
)

type AccountHandler struct {
	netWorthService service.NetWorthService
	logger          *slog.Logger
}

func NewAccountHandler(netWorthService service.NetWorthService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		netWorthService: netWorthService,
		logger:          logger,
	}
}

func (h *AccountHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/accounts", h.ListAccounts).Methods(http.MethodGet)
	router.HandleFunc("/accounts", h.CreateAccount).Methods(http.MethodPost)
	router.HandleFunc("/accounts/{id}", h.GetAccount).Methods(http.MethodGet)
	router.HandleFunc("/accounts/{id}", h.UpdateAccount).Methods(http.MethodPut)
	router.HandleFunc("/accounts/{id}", h.DeleteAccount).Methods(http.MethodDelete)
}

// ListAccounts returns accounts in insertion order, optionally filtered by ?type=.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.netWorthService.Accounts()

	if raw := r.URL.Query().Get("type"); raw != "" {
		t := models.AccountType(raw)
		if !t.Valid() {
			h.handleServiceError(w, errors.NewValidationError("type", "must be asset or liability"), "list accounts")
			return
		}
		filtered := make([]models.Account, 0, len(accounts))
		for _, a := range accounts {
			if a.Type == t {
				filtered = append(filtered, a)
			}
		}
		accounts = filtered
	}

	u.WriteJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := u.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid create account request", "error", err.Error())
		u.WriteError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	draft, err := validate.NewAccount(&req)
	if err != nil {
		h.handleServiceError(w, err, "create account")
		return
	}

	account := h.netWorthService.AddAccount(draft)
	u.WriteJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	account, ok := h.netWorthService.Account(accountID)
	if !ok {
		h.handleServiceError(w, errors.ErrAccountNotFound, "get account")
		return
	}

	u.WriteJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	var req models.UpdateAccountRequest
	if err := u.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid update account request", "account_id", accountID, "error", err.Error())
		u.WriteError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	existing, ok := h.netWorthService.Account(accountID)
	if !ok {
		h.handleServiceError(w, errors.ErrAccountNotFound, "update account")
		return
	}

	updated, err := validate.AccountUpdate(existing, &req)
	if err != nil {
		h.handleServiceError(w, err, "update account")
		return
	}

	h.netWorthService.UpdateAccount(updated)

	// the account may have been deleted concurrently, in which case the update was a no-op
	account, ok := h.netWorthService.Account(accountID)
	if !ok {
		h.handleServiceError(w, errors.ErrAccountNotFound, "update account")
		return
	}
	u.WriteJSON(w, http.StatusOK, account)
}

// DeleteAccount always answers 204; deleting an unknown account is a no-op.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	h.netWorthService.DeleteAccount(mux.Vars(r)["id"])
	u.WriteNoContent(w)
}

func (h *AccountHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.IsNotFound(err):
		u.WriteError(w, http.StatusNotFound, "account not found", "")
	case errors.IsValidationError(err):
		h.logger.Warn("invalid "+operation+" request", "error", err.Error())
		u.WriteError(w, http.StatusBadRequest, "validation error", err.Error())
	default:
		h.logger.Error("internal server error during "+operation, "error", err.Error())
		u.WriteError(w, http.StatusInternalServerError, "internal server error", "")
	}
}
