package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riteshkumar/networth-tracker/internal/metrics"
	"github.com/riteshkumar/networth-tracker/internal/models"
)

var errStoreDown = errors.New("storage unavailable")

// memoryRepository is a pass-through StateRepository recording every save.
type memoryRepository struct {
	mu        sync.Mutex
	current   *models.State
	saves     []*models.State
	loadErr   error
	saveErr   error
	loads     int
	blockSave chan struct{}
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Load(ctx context.Context) (*models.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.current == nil {
		return models.NewState(), nil
	}
	return r.current.Clone(), nil
}

func (r *memoryRepository) Save(ctx context.Context, state *models.State) error {
	if r.blockSave != nil {
		<-r.blockSave
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, state.Clone())
	if r.saveErr != nil {
		return r.saveErr
	}
	r.current = state.Clone()
	return nil
}

func (r *memoryRepository) savedStates() []*models.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.State(nil), r.saves...)
}

// sequenceIDs issues predictable IDs.
type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%03d", g.next)
}

// tickingClock advances one second on every reading.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, repo *memoryRepository) (*StateService, *metrics.Recorder) {
	t.Helper()
	recorder := metrics.NewRecorder()
	gateway := NewGateway(repo, "memory", recorder, discardLogger())
	svc := NewStateService(gateway, &sequenceIDs{}, discardLogger(),
		WithClock(newTickingClock().Now),
		WithMetrics(recorder),
	)
	return svc, recorder
}

// newReadyService returns a loaded service whose pending saves are drained at
// the end of the test.
func newReadyService(t *testing.T, repo *memoryRepository) *StateService {
	t.Helper()
	svc, _ := newTestService(t, repo)
	svc.Load(context.Background())
	t.Cleanup(func() { _ = svc.Close(context.Background()) })
	return svc
}

func drain(t *testing.T, svc *StateService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Close(ctx))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func cents(n int) decimal.Decimal {
	return decimal.New(int64(n), -2)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func draft(name string, typ models.AccountType, category, value string) models.AccountDraft {
	return models.AccountDraft{Name: name, Type: typ, Category: category, Value: dec(value)}
}
