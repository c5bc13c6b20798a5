package detour

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/worker"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 200 * time.Millisecond // pause when the stream is empty
	retryBackoff    = 500 * time.Millisecond
)

// Evaluator computes detour evaluations; implemented by usecase.DetourUseCase
type Evaluator interface {
	Evaluate(ctx context.Context, stops []domain.Stop, cap int) (*domain.DetourEvaluation, error)
	EvaluateLine(ctx context.Context, lineID uuid.UUID, cap int) (*domain.Line, *domain.DetourEvaluation, error)
}

// EvaluationWorker consumes evaluation requests from stream:detour:evaluate
// and publishes the outcome to stream:detour:done
type EvaluationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	evaluator    Evaluator
	consumerName string
	batchSize    int
	maxRetries   int
}

// NewEvaluationWorker creates a new EvaluationWorker
func NewEvaluationWorker(
	streamRepo repository.StreamRepository,
	evaluator Evaluator,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *EvaluationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = 10
	}

	return &EvaluationWorker{
		BaseWorker:   worker.NewBaseWorker("detour-evaluation", consumerGroup, logger),
		streamRepo:   streamRepo,
		evaluator:    evaluator,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until Stop is called or ctx is done
func (w *EvaluationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting EvaluationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamDetourEvaluate, w.ConsumerGroup()); err != nil {
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
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.sleep(ctx, time.Second)
				continue
			}

			if processed == 0 {
				w.sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch reads one batch and handles every message in it.
// It returns the number of messages read.
func (w *EvaluationWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamDetourEvaluate,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	handled := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// Битые сообщения подтверждаем, иначе они навсегда останутся в pending
			handled = append(handled, msg.ID)
			continue
		}

		done := w.evaluate(ctx, event)
		if done == nil || ctx.Err() != nil {
			// Сообщение не обработано, оставляем его в pending
			break
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamDetourDone, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			continue
		}
		handled = append(handled, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamDetourEvaluate, w.ConsumerGroup(), handled); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

// evaluate runs one event, retrying routing failures. It returns nil when
// the worker is stopped while waiting for a retry.
func (w *EvaluationWorker) evaluate(ctx context.Context, event *domain.DetourEvaluateEvent) *domain.DetourDoneEvent {
	done := &domain.DetourDoneEvent{
		RequestID: event.RequestID,
		LineID:    event.LineID,
	}

	var (
		evaluation *domain.DetourEvaluation
		err        error
	)
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 && !w.sleep(ctx, time.Duration(attempt)*retryBackoff) {
			w.Logger().Info("Worker stopping, leaving event pending",
				zap.String("request_id", event.RequestID.String()),
				zap.Int("attempt", attempt))
			return nil
		}

		if event.HasInlineStops() {
			evaluation, err = w.evaluator.Evaluate(ctx, event.Stops, event.Cap)
		} else {
			_, evaluation, err = w.evaluator.EvaluateLine(ctx, *event.LineID, event.Cap)
		}

		if err == nil || !retryable(err) || ctx.Err() != nil {
			break
		}
		w.Logger().Warn("Evaluation failed, retrying",
			zap.String("request_id", event.RequestID.String()),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	if err != nil {
		w.Logger().Error("Evaluation failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		done.Error = err.Error()
		return done
	}

	done.Evaluation = evaluation
	return done
}

// sleep waits for d and reports whether the full duration elapsed
func (w *EvaluationWorker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	case <-w.StopChan():
		return false
	}
}

func retryable(err error) bool {
	return stderrors.Is(err, errors.ErrRoutingFailed)
}

func parseMessage(msg domain.StreamMessage) (*domain.DetourEvaluateEvent, error) {
	var event domain.DetourEvaluateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if !event.HasInlineStops() && event.LineID == nil {
		return nil, fmt.Errorf("event %s names neither stops nor a line", event.RequestID)
	}
	if event.RequestID == uuid.Nil {
		event.RequestID = uuid.New()
	}

	return &event, nil
}
