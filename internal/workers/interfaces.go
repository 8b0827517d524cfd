// Package workers provides abstractions for managing and running
// background workers of the portal client.
// It defines the Worker interface, a Workers aggregate for running
// several workers in a unified way, and the session janitor that prunes
// stale session fields on a schedule.
package workers

import "context"

// Worker is the interface implemented by any background worker.
//
// Start launches the worker's background goroutine and returns
// immediately; the goroutine exits when ctx is cancelled or Stop is
// called. Stop blocks until the goroutine has fully exited and is safe
// to call when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// SessionJanitor prunes session fields whose last touch is older than
// the configured TTL. RunOnce performs a single sweep; the Worker
// methods run sweeps on a ticker.
type SessionJanitor interface {
	Worker

	// RunOnce performs one pruning sweep and returns how many fields
	// were removed.
	RunOnce(ctx context.Context) (int64, error)
}

// NewWorkers groups workers so callers can start and stop them together.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Workers runs a set of workers as a unit.
type Workers struct {
	workers []Worker
}

// Start launches every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

var _ Worker = (*Workers)(nil)
