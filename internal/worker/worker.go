package worker

import (
	"context"
)

// Worker - фоновый обработчик стрима, которым управляет WorkerManager
type Worker interface {
	// Start блокируется до Stop или отмены ctx
	Start(ctx context.Context) error

	// Stop просит воркер завершиться. Повторный вызов безопасен.
	Stop() error

	// Name - имя воркера для логов
	Name() string
}
