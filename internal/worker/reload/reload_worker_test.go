package reload_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/usecase"
	"github.com/poimap-service/internal/worker/reload"
)

type countingReloader struct {
	calls atomic.Int32
}

func (r *countingReloader) LoadMaps(ctx context.Context, _ usecase.MapLoader) int {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return -1
	}
	return 2
}

type noopLoader struct{}

func (noopLoader) Load(context.Context, domain.Variant) (*domain.MapData, error) {
	return nil, nil
}

func TestMapReloadWorker_ReloadsUntilStopped(t *testing.T) {
	maps := &countingReloader{}
	w := reload.NewMapReloadWorker(maps, noopLoader{}, 5*time.Millisecond, time.Second, zap.NewNop())
	assert.Equal(t, "map-reload", w.Name())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return maps.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestMapReloadWorker_StopsOnContextCancel(t *testing.T) {
	w := reload.NewMapReloadWorker(&countingReloader{}, noopLoader{}, time.Hour, 0, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
