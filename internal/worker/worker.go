package worker

import (
	"context"
)

// Worker - фоновая задача сервиса
type Worker interface {
	// Start блокируется, пока воркер не остановлен или ctx не отменён
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться
	Stop() error

	// Name возвращает имя воркера для логов
	Name() string
}
