package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-network/internal/worker"
)

// loopWorker крутится до Stop
type loopWorker struct {
	*worker.BaseWorker
	started atomic.Bool
}

func (w *loopWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stuckWorker игнорирует Stop
type stuckWorker struct {
	*worker.BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(ctx context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	w := &loopWorker{BaseWorker: worker.NewBaseWorker("loop", "stream:test", "group", zap.NewNop())}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), 50*time.Millisecond)
	w := &stuckWorker{
		BaseWorker: worker.NewBaseWorker("stuck", "stream:test", "group", zap.NewNop()),
		release:    make(chan struct{}),
	}
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	assert.Error(t, err)
	close(w.release)
}

func TestBaseWorker_StopIdempotent(t *testing.T) {
	w := worker.NewBaseWorker("base", "stream:test", "group", zap.NewNop())
	assert.False(t, w.IsStopped())
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	assert.Equal(t, "stream:test", w.Stream())
	assert.Equal(t, "group", w.ConsumerGroup())
}
