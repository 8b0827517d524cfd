// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionJanitor_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	j := NewSessionJanitor(mockStore, config.PortalWorkers{SessionTTL: 24 * time.Hour}, logger.Nop())
	ctx := context.Background()

	mockStore.EXPECT().Prune(ctx, 24*time.Hour).Return(int64(3), nil)

	pruned, err := j.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pruned)
}

func TestSessionJanitor_RunOnce_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	j := NewSessionJanitor(mockStore, config.PortalWorkers{SessionTTL: time.Hour}, logger.Nop())
	ctx := context.Background()
	errPrune := errors.New("database is locked")

	mockStore.EXPECT().Prune(ctx, time.Hour).Return(int64(0), errPrune)

	_, err := j.RunOnce(ctx)
	assert.ErrorIs(t, err, errPrune)
}

func TestSessionJanitor_StartSweepsOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	cfg := config.PortalWorkers{PruneInterval: 10 * time.Millisecond, SessionTTL: time.Hour}
	j := NewSessionJanitor(mockStore, cfg, logger.Nop())

	var sweeps atomic.Int32
	mockStore.EXPECT().Prune(gomock.Any(), time.Hour).DoAndReturn(
		func(context.Context, time.Duration) (int64, error) {
			sweeps.Add(1)
			return 0, nil
		},
	).MinTimes(1)

	j.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	j.Stop()

	assert.GreaterOrEqual(t, sweeps.Load(), int32(1))
}

func TestSessionJanitor_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j := NewSessionJanitor(mock.NewMockStore(ctrl), config.PortalWorkers{}, logger.Nop())
	j.Stop()
	j.Stop()
}

func TestSessionJanitor_StopHaltsSweeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	cfg := config.PortalWorkers{PruneInterval: 5 * time.Millisecond, SessionTTL: time.Hour}
	j := NewSessionJanitor(mockStore, cfg, logger.Nop())

	var sweeps atomic.Int32
	mockStore.EXPECT().Prune(gomock.Any(), time.Hour).DoAndReturn(
		func(context.Context, time.Duration) (int64, error) {
			sweeps.Add(1)
			return 0, nil
		},
	).AnyTimes()

	j.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	j.Stop()

	after := sweeps.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, sweeps.Load())
}

// ── Workers aggregate ────────────────────────────────────────────────────────

type recordingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (r *recordingWorker) Start(context.Context) { r.started.Add(1) }
func (r *recordingWorker) Stop()                 { r.stopped.Add(1) }

func TestWorkers_StartAndStopAll(t *testing.T) {
	w1 := &recordingWorker{}
	w2 := &recordingWorker{}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*recordingWorker{w1, w2} {
		assert.Equal(t, int32(1), w.started.Load(), "worker %d started", i)
		assert.Equal(t, int32(1), w.stopped.Load(), "worker %d stopped", i)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()
	ws.Start(context.Background())
	ws.Stop()
}
