package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/poimap-service/internal/worker"
)

type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-ctx.Done():
	case <-w.StopChan():
	}
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	logger := zap.NewNop()
	m := worker.NewWorkerManager(logger)

	assert.Error(t, m.Start(context.Background()), "nothing registered")

	w := &blockingWorker{BaseWorker: worker.NewBaseWorker("blocking", logger)}
	m.Register(w)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))
	assert.True(t, w.IsStopped())

	require.NoError(t, w.Stop(), "second stop is a no-op")
}

type stubbornWorker struct {
	*worker.BaseWorker
	release chan struct{}
}

func (w *stubbornWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	logger := zap.NewNop()
	m := worker.NewWorkerManager(logger)

	w := &stubbornWorker{BaseWorker: worker.NewBaseWorker("stubborn", logger), release: make(chan struct{})}
	defer close(w.release)
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Stop(ctx), context.DeadlineExceeded)
}
