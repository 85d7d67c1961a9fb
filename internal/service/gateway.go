package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/riteshkumar/networth-tracker/internal/errors"
	"github.com/riteshkumar/networth-tracker/internal/metrics"
	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/repository"
)

// Gateway is the persistence boundary of the state container. Neither Load
// nor Save ever fails towards its caller: errors are logged and counted.
type Gateway struct {
	repo    repository.StateRepository
	backend string
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func NewGateway(repo repository.StateRepository, backend string, recorder *metrics.Recorder, logger *slog.Logger) *Gateway {
	return &Gateway{
		repo:    repo,
		backend: backend,
		metrics: recorder,
		logger:  logger,
	}
}

// Load returns the persisted state, or an empty state when the stored blob is
// missing, malformed or unreachable.
func (g *Gateway) Load(ctx context.Context) *models.State {
	state, err := g.repo.Load(ctx)
	g.metrics.ObserveLoad(err)
	if err != nil {
		g.logger.Error("failed to load data",
			"backend", g.backend,
			"error", errors.NewPersistenceError("load", g.backend, err).Error(),
		)
		return models.NewState()
	}
	if state == nil {
		return models.NewState()
	}
	state.Normalize()
	return state
}

// Save writes the full state. Failures are not retried; the in-memory state
// stays authoritative.
func (g *Gateway) Save(ctx context.Context, state *models.State) {
	start := time.Now()
	err := g.repo.Save(ctx, state)
	g.metrics.ObserveSave(time.Since(start), err)
	if err != nil {
		g.logger.Error("failed to save data",
			"backend", g.backend,
			"accounts", len(state.Accounts),
			"snapshots", len(state.Snapshots),
			"error", errors.NewPersistenceError("save", g.backend, err).Error(),
		)
		return
	}
	g.logger.Debug("state saved",
		"backend", g.backend,
		"accounts", len(state.Accounts),
		"snapshots", len(state.Snapshots),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
