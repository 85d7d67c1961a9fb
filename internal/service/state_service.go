package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/riteshkumar/networth-tracker/internal/derive"
	"github.com/riteshkumar/networth-tracker/internal/idgen"
	"github.com/riteshkumar/networth-tracker/internal/metrics"
	"github.com/riteshkumar/networth-tracker/internal/models"
)

// NetWorthService is the read surface and action set offered to the
// presentation layer.
type NetWorthService interface {
	Load(ctx context.Context)
	IsLoading() bool

	Accounts() []models.Account
	Account(id string) (models.Account, bool)
	Snapshots() []models.Snapshot
	Snapshot(id string) (models.Snapshot, bool)

	TotalAssets() decimal.Decimal
	TotalLiabilities() decimal.Decimal
	NetWorth() decimal.Decimal
	Totals() models.Totals

	AddAccount(draft models.AccountDraft) models.Account
	UpdateAccount(account models.Account)
	DeleteAccount(id string)
	TakeSnapshot() models.Snapshot
	DeleteSnapshot(id string)

	Close(ctx context.Context) error
}

const (
	actionAddAccount     = "add_account"
	actionUpdateAccount  = "update_account"
	actionDeleteAccount  = "delete_account"
	actionTakeSnapshot   = "take_snapshot"
	actionDeleteSnapshot = "delete_snapshot"
)

// StateService owns the account and snapshot stores. It starts in the loading
// phase, moves to ready once Load completes, and from then on hands a copy of
// the full state to the save queue after every action.
type StateService struct {
	mu        sync.RWMutex
	state     *models.State
	isLoading bool
	loadOnce  sync.Once

	gateway *Gateway
	writer  *writer
	ids     idgen.Generator
	now     func() time.Time
	metrics *metrics.Recorder
	logger  *slog.Logger
}

var _ NetWorthService = (*StateService)(nil)

type Option func(*StateService)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *StateService) { s.now = now }
}

func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *StateService) { s.metrics = recorder }
}

func NewStateService(gateway *Gateway, ids idgen.Generator, logger *slog.Logger, opts ...Option) *StateService {
	s := &StateService{
		state:     models.NewState(),
		isLoading: true,
		gateway:   gateway,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.writer = newWriter(gateway.Save)
	return s
}

// Load populates the stores from the gateway. Only the first call has any
// effect; a failed load leaves the stores empty.
func (s *StateService) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		loaded := s.gateway.Load(ctx)

		s.mu.Lock()
		s.state = loaded
		s.isLoading = false
		s.observeLocked()
		s.mu.Unlock()

		s.logger.Info("state loaded",
			"accounts", len(loaded.Accounts),
			"snapshots", len(loaded.Snapshots),
		)
	})
}

func (s *StateService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *StateService) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneAccounts(s.state.Accounts)
}

func (s *StateService) Account(id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOfAccount(s.state.Accounts, id)
	if i < 0 {
		return models.Account{}, false
	}
	return s.state.Accounts[i], true
}

// Snapshots returns all snapshots, newest first.
func (s *StateService) Snapshots() []models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Snapshots
}

func (s *StateService) Snapshot(id string) (models.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.state.Snapshots, func(snap models.Snapshot) bool { return snap.ID == id })
	if i < 0 {
		return models.Snapshot{}, false
	}
	return s.state.Snapshots[i].Clone(), true
}

// Totals derives assets, liabilities and net worth from the current accounts.
func (s *StateService) Totals() models.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.Totals(s.state.Accounts)
}

func (s *StateService) TotalAssets() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.TotalAssets(s.state.Accounts)
}

func (s *StateService) TotalLiabilities() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.TotalLiabilities(s.state.Accounts)
}

func (s *StateService) NetWorth() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.NetWorth(s.state.Accounts)
}

// AddAccount stores a new account built from draft. The draft is trusted:
// validation belongs to the caller.
func (s *StateService) AddAccount(draft models.AccountDraft) models.Account {
	var account models.Account
	s.mutate(actionAddAccount, func(st *models.State) {
		now := s.timestamp()
		account = models.Account{
			ID:        s.ids.NewID(),
			Name:      draft.Name,
			Type:      draft.Type,
			Category:  draft.Category,
			Value:     draft.Value,
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.Accounts = append(st.Accounts, account)
	})

	s.logger.Info("account added",
		"account_id", account.ID,
		"type", account.Type,
		"category", account.Category,
	)
	return account
}

// UpdateAccount replaces the stored account with the same ID in place and
// stamps a fresh UpdatedAt. An unknown ID is a no-op.
func (s *StateService) UpdateAccount(account models.Account) {
	found := false
	s.mutate(actionUpdateAccount, func(st *models.State) {
		i := indexOfAccount(st.Accounts, account.ID)
		if i < 0 {
			return
		}
		found = true
		account.UpdatedAt = s.timestamp()
		st.Accounts[i] = account
	})

	if !found {
		s.logger.Debug("update of unknown account ignored", "account_id", account.ID)
		return
	}
	s.logger.Info("account updated", "account_id", account.ID)
}

// DeleteAccount removes the account with the given ID, if present. Snapshots
// hold their own copies and are left untouched.
func (s *StateService) DeleteAccount(id string) {
	s.mutate(actionDeleteAccount, func(st *models.State) {
		st.Accounts = slices.DeleteFunc(st.Accounts, func(a models.Account) bool { return a.ID == id })
	})
	s.logger.Info("account deleted", "account_id", id)
}

// TakeSnapshot captures the current totals and a copy of every account, and
// puts the snapshot at the front of the snapshot list.
func (s *StateService) TakeSnapshot() models.Snapshot {
	var snap models.Snapshot
	s.mutate(actionTakeSnapshot, func(st *models.State) {
		totals := derive.Totals(st.Accounts)
		snap = models.Snapshot{
			ID:               s.ids.NewID(),
			Date:             s.timestamp(),
			NetWorth:         totals.NetWorth,
			TotalAssets:      totals.TotalAssets,
			TotalLiabilities: totals.TotalLiabilities,
			Accounts:         models.CloneAccounts(st.Accounts),
		}
		st.Snapshots = slices.Insert(st.Snapshots, 0, snap)
	})

	s.logger.Info("snapshot taken",
		"snapshot_id", snap.ID,
		"net_worth", snap.NetWorth.String(),
		"accounts", len(snap.Accounts),
	)
	return snap.Clone()
}

func (s *StateService) DeleteSnapshot(id string) {
	s.mutate(actionDeleteSnapshot, func(st *models.State) {
		st.Snapshots = slices.DeleteFunc(st.Snapshots, func(snap models.Snapshot) bool { return snap.ID == id })
	})
	s.logger.Info("snapshot deleted", "snapshot_id", id)
}

// Close stops accepting saves and waits for queued ones to finish.
func (s *StateService) Close(ctx context.Context) error {
	pending := s.writer.pending()
	if err := s.writer.close(ctx); err != nil {
		s.logger.Error("pending saves abandoned",
			"pending", pending,
			"error", err.Error(),
		)
		return err
	}
	return nil
}

// mutate applies fn under the write lock and, once ready, queues a copy of the
// resulting state. Queueing under the lock keeps saves in action order.
func (s *StateService) mutate(action string, fn func(st *models.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.state)
	s.metrics.ObserveAction(action)
	s.observeLocked()

	if s.isLoading {
		return
	}
	if !s.writer.enqueue(s.state.Clone()) {
		s.logger.Warn("save skipped after close", "action", action)
	}
}

func (s *StateService) observeLocked() {
	s.metrics.ObserveState(derive.Totals(s.state.Accounts), len(s.state.Accounts), len(s.state.Snapshots))
}

// timestamp strips the monotonic reading so stored times compare equal after
// a JSON round trip.
func (s *StateService) timestamp() time.Time {
	return s.now().UTC()
}

func indexOfAccount(accounts []models.Account, id string) int {
	return slices.IndexFunc(accounts, func(a models.Account) bool { return a.ID == id })
}
