package reload

import (
	"context"
	"time"

	"github.com/poimap-service/internal/usecase"
	"github.com/poimap-service/internal/worker"
	"go.uber.org/zap"
)

// Reloader - то, что умеет перечитать документы карт
type Reloader interface {
	LoadMaps(ctx context.Context, loader usecase.MapLoader) int
}

// MapReloadWorker периодически перечитывает документы карт из источника.
// Вариант, который не удалось загрузить, сохраняет последние удачные данные.
type MapReloadWorker struct {
	*worker.BaseWorker
	maps     Reloader
	loader   usecase.MapLoader
	interval time.Duration
	timeout  time.Duration
}

var _ worker.Worker = (*MapReloadWorker)(nil)

// NewMapReloadWorker создает воркер перезагрузки карт
func NewMapReloadWorker(
	maps Reloader,
	loader usecase.MapLoader,
	interval time.Duration,
	timeout time.Duration,
	logger *zap.Logger,
) *MapReloadWorker {
	return &MapReloadWorker{
		BaseWorker: worker.NewBaseWorker("map-reload", logger),
		maps:       maps,
		loader:     loader,
		interval:   interval,
		timeout:    timeout,
	}
}

// Start блокируется до Stop или отмены ctx
func (w *MapReloadWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Logger().Info("Map reload worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.StopChan():
			return nil
		case <-ticker.C:
			w.reload(ctx)
		}
	}
}

func (w *MapReloadWorker) reload(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	start := time.Now()
	loaded := w.maps.LoadMaps(ctx, w.loader)
	w.Logger().Info("Map documents reloaded",
		zap.Int("variants", loaded),
		zap.Duration("took", time.Since(start)))
}
