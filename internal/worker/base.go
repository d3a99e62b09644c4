package worker

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// BaseWorker содержит общую логику для всех воркеров стримов
type BaseWorker struct {
	name          string
	logger        *zap.Logger
	stopChan      chan struct{}
	stopped       bool
	mu            sync.Mutex
	consumerGroup string
	consumerName  string
}

// NewBaseWorker создает новый BaseWorker.
// Имя consumer - hostname-pid, уникально для каждого процесса в группе.
func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "worker"
	}

	return &BaseWorker{
		name:          name,
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
	}
}

// Name возвращает имя воркера
func (w *BaseWorker) Name() string {
	return w.name
}

// Stop останавливает воркер. Повторный вызов - no-op.
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.logger.Info("Stopping worker")
	close(w.stopChan)
	w.stopped = true

	return nil
}

// IsStopped проверяет, остановлен ли воркер
func (w *BaseWorker) IsStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// StopChan возвращает канал остановки
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

func (w *BaseWorker) ConsumerName() string {
	return w.consumerName
}

// Logger возвращает логгер с полем worker
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
