// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/session"
)

type sessionJanitor struct {
	store    session.Store
	interval time.Duration
	ttl      time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionJanitor creates a janitor that prunes session fields older
// than cfg.SessionTTL every cfg.PruneInterval. The janitor is idle until
// Start is called; a zero interval defaults to one hour.
func NewSessionJanitor(store session.Store, cfg config.PortalWorkers, log *logger.Logger) SessionJanitor {
	return &sessionJanitor{
		store:    store,
		interval: cfg.PruneInterval,
		ttl:      cfg.SessionTTL,
		logger:   log,
	}
}

// RunOnce implements [SessionJanitor].
func (j *sessionJanitor) RunOnce(ctx context.Context) (int64, error) {
	pruned, err := j.store.Prune(ctx, j.ttl)
	if err != nil {
		return 0, err
	}

	if pruned > 0 {
		j.logger.Info().Int64("pruned", pruned).Msg("stale session fields removed")
	}

	return pruned, nil
}

// Start implements [Worker]. It stops any previously running loop, then
// launches a goroutine that sweeps every interval until ctx is cancelled
// or Stop is called.
func (j *sessionJanitor) Start(ctx context.Context) {
	interval := j.interval
	if interval <= 0 {
		interval = time.Hour
	}

	j.Stop()

	j.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				if _, err := j.RunOnce(loopCtx); err != nil {
					j.logger.Err(err).Msg("session prune sweep failed")
				}
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the loop's context and blocks
// until the goroutine has fully exited. No-op when the janitor is not
// running.
func (j *sessionJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
