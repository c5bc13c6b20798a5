package detour_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	apperrors "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/worker/detour"
)

const group = "test-group"

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockEvaluator is a mock of the detour use case
type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) Evaluate(ctx context.Context, stops []domain.Stop, cap int) (*domain.DetourEvaluation, error) {
	args := m.Called(ctx, stops, cap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetourEvaluation), args.Error(1)
}

func (m *MockEvaluator) EvaluateLine(ctx context.Context, lineID uuid.UUID, cap int) (*domain.Line, *domain.DetourEvaluation, error) {
	args := m.Called(ctx, lineID, cap)
	var line *domain.Line
	if l := args.Get(0); l != nil {
		line = l.(*domain.Line)
	}
	var evaluation *domain.DetourEvaluation
	if e := args.Get(1); e != nil {
		evaluation = e.(*domain.DetourEvaluation)
	}
	return line, evaluation, args.Error(2)
}

func message(t *testing.T, id string, event domain.DetourEvaluateEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func inlineStops() []domain.Stop {
	return []domain.Stop{
		{Name: "A", Lat: 49.80, Lng: 9.93, RealStop: true},
		{Name: "B", Lat: 49.80, Lng: 9.97, RealStop: true},
	}
}

func doneFor(requestID uuid.UUID, withError bool) interface{} {
	return mock.MatchedBy(func(e *domain.DetourDoneEvent) bool {
		return e.RequestID == requestID && (e.Error != "") == withError && (e.Evaluation == nil) == withError
	})
}

func TestEvaluationWorker_Name(t *testing.T) {
	w := detour.NewEvaluationWorker(&MockStreamRepository{}, &MockEvaluator{}, group, 10, 3, zap.NewNop())

	assert.Equal(t, "detour-evaluation", w.Name())
}

func TestEvaluationWorker_Stop(t *testing.T) {
	w := detour.NewEvaluationWorker(&MockStreamRepository{}, &MockEvaluator{}, group, 10, 3, zap.NewNop())

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}

func TestEvaluationWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("inline, stored and malformed events", func(t *testing.T) {
		streams := &MockStreamRepository{}
		evaluator := &MockEvaluator{}
		w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 0, zap.NewNop())

		lineID := uuid.New()
		inline := domain.DetourEvaluateEvent{RequestID: uuid.New(), Stops: inlineStops(), Cap: 1}
		stored := domain.DetourEvaluateEvent{RequestID: uuid.New(), LineID: &lineID, Cap: 2}
		evaluation := &domain.DetourEvaluation{Result: &domain.DetourResult{AverageDetour: 1.2}}

		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return([]domain.StreamMessage{
				message(t, "1-0", inline),
				{ID: "2-0", Data: "{broken"},
				message(t, "3-0", stored),
			}, nil)
		evaluator.On("Evaluate", ctx, inlineStops(), 1).Return(evaluation, nil)
		evaluator.On("EvaluateLine", ctx, lineID, 2).Return(&domain.Line{ID: lineID}, evaluation, nil)
		streams.On("PublishToStream", ctx, domain.StreamDetourDone, doneFor(inline.RequestID, false)).Return(nil)
		streams.On("PublishToStream", ctx, domain.StreamDetourDone, doneFor(stored.RequestID, false)).Return(nil)
		streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{"1-0", "2-0", "3-0"}).Return(nil)

		processed, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, processed)
		streams.AssertExpectations(t)
		evaluator.AssertExpectations(t)
	})

	t.Run("event without stops or line is dropped", func(t *testing.T) {
		streams := &MockStreamRepository{}
		evaluator := &MockEvaluator{}
		w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 0, zap.NewNop())

		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return([]domain.StreamMessage{message(t, "1-0", domain.DetourEvaluateEvent{Cap: 1})}, nil)
		streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{"1-0"}).Return(nil)

		_, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		evaluator.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything, mock.Anything)
		streams.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed evaluation is published with its error", func(t *testing.T) {
		streams := &MockStreamRepository{}
		evaluator := &MockEvaluator{}
		w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 3, zap.NewNop())

		event := domain.DetourEvaluateEvent{RequestID: uuid.New(), Stops: inlineStops()[:1]}
		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return([]domain.StreamMessage{message(t, "1-0", event)}, nil)
		evaluator.On("Evaluate", ctx, mock.Anything, 0).Return(nil, apperrors.ErrInvalidLine)
		streams.On("PublishToStream", ctx, domain.StreamDetourDone, doneFor(event.RequestID, true)).Return(nil)
		streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{"1-0"}).Return(nil)

		_, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		// validation errors are not retried
		evaluator.AssertNumberOfCalls(t, "Evaluate", 1)
		streams.AssertExpectations(t)
	})

	t.Run("routing failures are retried", func(t *testing.T) {
		streams := &MockStreamRepository{}
		evaluator := &MockEvaluator{}
		w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 1, zap.NewNop())

		event := domain.DetourEvaluateEvent{RequestID: uuid.New(), Stops: inlineStops()}
		evaluation := &domain.DetourEvaluation{Result: &domain.DetourResult{}}
		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return([]domain.StreamMessage{message(t, "1-0", event)}, nil)
		evaluator.On("Evaluate", ctx, mock.Anything, 0).Return(nil, apperrors.ErrRoutingFailed).Once()
		evaluator.On("Evaluate", ctx, mock.Anything, 0).Return(evaluation, nil).Once()
		streams.On("PublishToStream", ctx, domain.StreamDetourDone, doneFor(event.RequestID, false)).Return(nil)
		streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{"1-0"}).Return(nil)

		_, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		evaluator.AssertNumberOfCalls(t, "Evaluate", 2)
		streams.AssertExpectations(t)
	})

	t.Run("deterministic failures are not retried", func(t *testing.T) {
		for _, failure := range []error{apperrors.ErrRouteMismatch, apperrors.ErrInvalidLine} {
			streams := &MockStreamRepository{}
			evaluator := &MockEvaluator{}
			w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 3, zap.NewNop())

			event := domain.DetourEvaluateEvent{RequestID: uuid.New(), Stops: inlineStops()}
			streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
				Return([]domain.StreamMessage{message(t, "1-0", event)}, nil)
			evaluator.On("Evaluate", ctx, mock.Anything, 0).Return(nil, failure)
			streams.On("PublishToStream", ctx, domain.StreamDetourDone, doneFor(event.RequestID, true)).Return(nil)
			streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{"1-0"}).Return(nil)

			_, err := w.ProcessBatch(ctx)

			require.NoError(t, err)
			evaluator.AssertNumberOfCalls(t, "Evaluate", 1)
			streams.AssertExpectations(t)
		}
	})

	t.Run("stop interrupts retries and leaves the message pending", func(t *testing.T) {
		streams := &MockStreamRepository{}
		evaluator := &MockEvaluator{}
		w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 3, zap.NewNop())
		require.NoError(t, w.Stop())

		event := domain.DetourEvaluateEvent{RequestID: uuid.New(), Stops: inlineStops()}
		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return([]domain.StreamMessage{message(t, "1-0", event)}, nil)
		evaluator.On("Evaluate", ctx, mock.Anything, 0).Return(nil, apperrors.ErrRoutingFailed)
		streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{}).Return(nil)

		_, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		evaluator.AssertNumberOfCalls(t, "Evaluate", 1)
		streams.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
		streams.AssertExpectations(t)
	})

	t.Run("unpublished results stay pending", func(t *testing.T) {
		streams := &MockStreamRepository{}
		evaluator := &MockEvaluator{}
		w := detour.NewEvaluationWorker(streams, evaluator, group, 10, 0, zap.NewNop())

		event := domain.DetourEvaluateEvent{RequestID: uuid.New(), Stops: inlineStops()}
		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return([]domain.StreamMessage{message(t, "1-0", event)}, nil)
		evaluator.On("Evaluate", ctx, mock.Anything, 0).Return(&domain.DetourEvaluation{}, nil)
		streams.On("PublishToStream", ctx, domain.StreamDetourDone, mock.Anything).Return(errors.New("READONLY"))
		streams.On("AckMessages", ctx, domain.StreamDetourEvaluate, group, []string{}).Return(nil)

		_, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		streams.AssertExpectations(t)
	})

	t.Run("consume error", func(t *testing.T) {
		streams := &MockStreamRepository{}
		w := detour.NewEvaluationWorker(streams, &MockEvaluator{}, group, 10, 0, zap.NewNop())

		streams.On("ConsumeBatch", ctx, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 10).
			Return(nil, errors.New("connection refused"))

		processed, err := w.ProcessBatch(ctx)

		assert.Error(t, err)
		assert.Zero(t, processed)
	})
}

func TestEvaluationWorker_ContextCancellation(t *testing.T) {
	streams := &MockStreamRepository{}
	w := detour.NewEvaluationWorker(streams, &MockEvaluator{}, group, 5, 0, zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamDetourEvaluate, group).Return(nil)
	streams.On("ConsumeBatch", mock.Anything, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 5).
		Return([]domain.StreamMessage{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestEvaluationWorker_StopEndsLoop(t *testing.T) {
	streams := &MockStreamRepository{}
	w := detour.NewEvaluationWorker(streams, &MockEvaluator{}, group, 5, 0, zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamDetourEvaluate, group).Return(nil)
	streams.On("ConsumeBatch", mock.Anything, domain.StreamDetourEvaluate, group, mock.AnythingOfType("string"), 5).
		Return([]domain.StreamMessage{}, nil)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestEvaluationWorker_CreateGroupFailure(t *testing.T) {
	streams := &MockStreamRepository{}
	w := detour.NewEvaluationWorker(streams, &MockEvaluator{}, group, 5, 0, zap.NewNop())

	streams.On("CreateConsumerGroup", mock.Anything, domain.StreamDetourEvaluate, group).
		Return(errors.New("NOPERM"))

	err := w.Start(context.Background())

	assert.Error(t, err)
}
