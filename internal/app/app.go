package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riteshkumar/networth-tracker/internal/config"
	"github.com/riteshkumar/networth-tracker/internal/idgen"
	"github.com/riteshkumar/networth-tracker/internal/metrics"
	"github.com/riteshkumar/networth-tracker/internal/repository"
	"github.com/riteshkumar/networth-tracker/internal/service"
)

// App is a loaded state service together with the store it persists to.
type App struct {
	Service *service.StateService
	Metrics *metrics.Recorder

	closeStore func() error
	logger     *slog.Logger
}

// Open connects the configured store and loads the persisted state. A store
// that cannot be reached at startup is an error; once running, load and save
// failures are logged and never surface to callers.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	repo, closeStore, err := repository.Open(ctx, cfg.Store())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	logger.Info("connected to store", "backend", cfg.StoreBackend)

	recorder := metrics.NewRecorder()
	gateway := service.NewGateway(repo, cfg.StoreBackend, recorder, logger)
	svc := service.NewStateService(gateway, idgen.NewUUIDGenerator(), logger, service.WithMetrics(recorder))
	svc.Load(ctx)

	return &App{
		Service:    svc,
		Metrics:    recorder,
		closeStore: closeStore,
		logger:     logger,
	}, nil
}

// Close waits for pending saves, bounded by ctx, then releases the store.
func (a *App) Close(ctx context.Context) error {
	drainErr := a.Service.Close(ctx)
	if err := a.closeStore(); err != nil {
		a.logger.Error("failed to close store", "error", err.Error())
		if drainErr == nil {
			return err
		}
	}
	return drainErr
}
