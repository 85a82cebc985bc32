package stopline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/transit-network/internal/config"
	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/usecase/dto"
	"github.com/transit-network/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
)

// StopLineCreator - то, что воркер вызывает для каждой заявки (StopLineUseCase)
type StopLineCreator interface {
	Create(ctx context.Context, req dto.StopLineRequest) (*dto.StopLineResponse, error)
}

// ImportWorker создаёт связи остановка-линия из stream:transit:stopline:import.
// Каждая заявка обрабатывается отдельно, результат уходит в stream:transit:stopline:done.
type ImportWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	creator      StopLineCreator
	consumerName string
	batchSize    int
	readTimeout  time.Duration
	maxRetries   int

	// retryInterval - начальная пауза между повторами транзиентных ошибок
	retryInterval time.Duration
}

func NewImportWorker(
	streamRepo repository.StreamRepository,
	creator StopLineCreator,
	cfg config.WorkerConfig,
	logger *zap.Logger,
) *ImportWorker {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}

	return &ImportWorker{
		BaseWorker:    worker.NewBaseWorker("stopline-import", domain.StreamStopLineImport, cfg.ConsumerGroup, logger),
		streamRepo:    streamRepo,
		creator:       creator,
		consumerName:  cfg.ConsumerName,
		batchSize:     batchSize,
		readTimeout:   cfg.StreamReadTimeout,
		maxRetries:    cfg.MaxRetries,
		retryInterval: 200 * time.Millisecond,
	}
}

// WithRetryInterval меняет начальную паузу ретраев
func (w *ImportWorker) WithRetryInterval(d time.Duration) *ImportWorker {
	w.retryInterval = d
	return w
}

func (w *ImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting stop line import worker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
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

func (w *ImportWorker) pause(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// ProcessBatch читает до batchSize сообщений, обрабатывает и подтверждает их.
// Возвращает число прочитанных сообщений.
func (w *ImportWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	readCtx := ctx
	if w.readTimeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(ctx, w.readTimeout)
		defer cancel()
	}

	messages, err := w.streamRepo.ConsumeBatch(readCtx, w.Stream(), w.ConsumerGroup(), w.consumerName, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	var created, failed int

	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseMessage(msg)
		if err != nil {
			// битое сообщение ACK-аем вместе с остальными, чтобы не застревало в PEL
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		result := w.handle(ctx, event)
		if result.Succeeded() {
			created++
		} else {
			failed++
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamStopLineDone, result); err != nil {
			logger.Error("Failed to publish import result",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
		}
	}

	if err := w.streamRepo.AckMessages(ctx, w.Stream(), w.ConsumerGroup(), ids); err != nil {
		// сообщения останутся в PEL, повторная обработка отсечётся уникальностью тройки
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("created", created),
		zap.Int("failed", failed))

	return len(messages), nil
}

func (w *ImportWorker) handle(ctx context.Context, event *domain.StopLineImportEvent) *domain.StopLineImportResult {
	result := &domain.StopLineImportResult{RequestID: event.RequestID}

	req := dto.StopLineRequest{
		StopID:        event.StopID,
		LineID:        event.LineID,
		EstimatedTime: event.EstimatedTime,
		IsEnabled:     event.IsEnabled,
	}

	resp, err := w.createWithRetry(ctx, req)
	if err != nil {
		appErr, ok := errors.As(err)
		if !ok {
			appErr = errors.ErrInternalServer
		}
		result.ErrorCode = appErr.Code
		result.Error = appErr.Message

		w.Logger().Warn("Stop line import rejected",
			zap.String("request_id", event.RequestID.String()),
			zap.Int64("stop_id", event.StopID),
			zap.Int64("line_id", event.LineID),
			zap.String("error_code", appErr.Code),
			zap.Error(err))
		return result
	}

	result.StopLine = &domain.StopLine{
		ID:            resp.ID,
		BusStopID:     resp.StopID,
		BusLineID:     resp.LineID,
		EstimatedTime: resp.EstimatedTime,
		IsEnabled:     resp.IsEnabled,
	}
	return result
}

// createWithRetry повторяет только транзиентные ошибки; отказы бизнес-правил (4xx) окончательны
func (w *ImportWorker) createWithRetry(ctx context.Context, req dto.StopLineRequest) (*dto.StopLineResponse, error) {
	op := func() (*dto.StopLineResponse, error) {
		resp, err := w.creator.Create(ctx, req)
		if err == nil {
			return resp, nil
		}
		if appErr, ok := errors.As(err); ok && appErr.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.retryInterval
	b.MaxElapsedTime = 0

	maxRetries := w.maxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return backoff.RetryWithData(op, backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxRetries)), ctx))
}

func parseMessage(msg domain.StreamMessage) (*domain.StopLineImportEvent, error) {
	var raw []byte
	switch v := msg.Values["data"].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.StopLineImportEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
