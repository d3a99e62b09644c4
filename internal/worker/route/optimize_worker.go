package route

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/pkg/errors"
	"github.com/route-sequencing-service/internal/pkg/validator"
	"github.com/route-sequencing-service/internal/usecase/dto"
	"github.com/route-sequencing-service/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза после ошибки чтения
	publishBackoff  = 100 * time.Millisecond
)

// RouteOptimizer - построение маршрута (usecase.RouteUseCase)
type RouteOptimizer interface {
	OptimizeRoute(ctx context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizeRouteResponse, error)
}

// OptimizeWorker обрабатывает события stream:route:optimize и публикует результаты в stream:route:done
type OptimizeWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	optimizer    RouteOptimizer
	eventTimeout time.Duration
	maxRetries   int
	claimMinIdle time.Duration
}

// NewOptimizeWorker создает новый OptimizeWorker
func NewOptimizeWorker(
	streamRepo repository.StreamRepository,
	optimizer RouteOptimizer,
	consumerGroup string,
	eventTimeout time.Duration,
	maxRetries int,
	claimMinIdle time.Duration,
	logger *zap.Logger,
) *OptimizeWorker {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &OptimizeWorker{
		BaseWorker:   worker.NewBaseWorker("route-optimize", consumerGroup, logger),
		streamRepo:   streamRepo,
		optimizer:    optimizer,
		eventTimeout: eventTimeout,
		maxRetries:   maxRetries,
		claimMinIdle: claimMinIdle,
	}
}

// Start запускает воркер и блокируется до остановки или отмены контекста
func (w *OptimizeWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting OptimizeWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_batch_size", maxBatchSize),
		zap.Duration("claim_min_idle", w.claimMinIdle))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteOptimize, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// readBatch сначала забирает зависшие pending сообщения группы, затем читает новые
func (w *OptimizeWorker) readBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	claimed, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamRouteOptimize,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.claimMinIdle,
		maxBatchSize,
	)
	if err != nil {
		w.Logger().Warn("Failed to claim pending messages", zap.Error(err))
	}
	if len(claimed) > 0 {
		return claimed, nil
	}

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRouteOptimize,
		w.ConsumerGroup(),
		w.ConsumerName(),
		maxBatchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений.
func (w *OptimizeWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.readBatch(ctx)
	if err != nil {
		return 0, err
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	failed := 0

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		done := w.handleEvent(ctx, event)
		if done.Error != "" {
			failed++
		}

		if err := w.publishDone(ctx, done); err != nil {
			// Без ACK сообщение остается в pending и будет забрано повторно через claimMinIdle
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			continue
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRouteOptimize, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("acked", len(ackIDs)),
		zap.Int("failed", failed))

	return len(messages), nil
}

// handleEvent строит маршрут для события. Ошибка попадает в поле Error результата.
func (w *OptimizeWorker) handleEvent(ctx context.Context, event *domain.RouteOptimizeEvent) *domain.RouteDoneEvent {
	done := &domain.RouteDoneEvent{
		RequestID: event.RequestID,
		Order:     []string{},
		Legs:      []domain.Leg{},
	}

	req := toRequest(event)
	if err := validator.Validate(&req); err != nil {
		w.Logger().Warn("Invalid route event",
			zap.String("request_id", event.RequestID.String()),
			zap.Any("details", validator.Details(err)))
		done.Error = errors.ErrInvalidRequest.Message
		return done
	}

	eventCtx := ctx
	if w.eventTimeout > 0 {
		var cancel context.CancelFunc
		eventCtx, cancel = context.WithTimeout(ctx, w.eventTimeout)
		defer cancel()
	}

	resp, err := w.optimizer.OptimizeRoute(eventCtx, req)
	if err != nil {
		done.Error = publicMessage(err)
		return done
	}

	done.PlanID = resp.PlanID
	done.Order = resp.Order
	done.TotalDurationMinutes = resp.TotalDurationMinutes
	done.TotalDistanceKm = resp.TotalDistanceKm
	done.Legs = resp.Legs
	done.Degraded = resp.Degraded
	return done
}

// publishDone публикует результат, делая до maxRetries попыток
func (w *OptimizeWorker) publishDone(ctx context.Context, done *domain.RouteDoneEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamRouteDone, done); err == nil {
			return nil
		}
		if attempt < w.maxRetries {
			w.pause(ctx, time.Duration(attempt)*publishBackoff)
		}
	}
	return fmt.Errorf("publish after %d attempts: %w", w.maxRetries, err)
}

// pause - sleep, прерываемый остановкой воркера или контекстом
func (w *OptimizeWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// parseMessage парсит сообщение из стрима в RouteOptimizeEvent
func parseMessage(msg domain.StreamMessage) (*domain.RouteOptimizeEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.RouteOptimizeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

func toRequest(event *domain.RouteOptimizeEvent) dto.OptimizeRouteRequest {
	req := dto.OptimizeRouteRequest{
		Locations: make([]dto.LocationInput, len(event.Locations)),
	}
	for i, l := range event.Locations {
		req.Locations[i] = dto.LocationInput{ID: l.ID, Lat: l.Lat, Lng: l.Lng}
	}
	return req
}

// publicMessage - текст ошибки для потребителя стрима, без деталей провайдера
func publicMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return errors.ErrRouteOptimizationFailed.Message
}
