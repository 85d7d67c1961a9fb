package service

import (
	"context"
	"sync"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

// writer is a single-goroutine save queue. States are saved in the order they
// were enqueued; enqueue never blocks on the save itself.
type writer struct {
	save func(ctx context.Context, state *models.State)

	mu     sync.Mutex
	queue  []*models.State
	closed bool

	wake chan struct{}
	done chan struct{}
}

func newWriter(save func(ctx context.Context, state *models.State)) *writer {
	w := &writer{
		save: save,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue reports false once the writer has been closed.
func (w *writer) enqueue(state *models.State) bool {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return false
	}
	w.queue = append(w.queue, state)
	w.mu.Unlock()

	w.signal()
	return true
}

func (w *writer) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.queue) == 0 {
			if w.closed {
				w.mu.Unlock()
				return
			}
			w.mu.Unlock()
			<-w.wake
			w.mu.Lock()
		}
		next := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		w.mu.Unlock()

		// saves are never cancelled
		w.save(context.Background(), next)
	}
}

func (w *writer) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// close stops accepting states and waits for the queue to drain, or for ctx
// to end, whichever comes first.
func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.signal()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
