package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/config"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/delivery/http/handler"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
)

type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) QueryRoute(ctx context.Context, coords []domain.Coordinate) (*domain.QueriedPath, error) {
	args := m.Called(ctx, coords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueriedPath), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCacheRepository) GetEvaluation(ctx context.Context, key string) (*domain.DetourEvaluation, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetourEvaluation), args.Error(1)
}

func (m *MockCacheRepository) SetEvaluation(ctx context.Context, key string, evaluation *domain.DetourEvaluation, ttl time.Duration) error {
	return m.Called(ctx, key, evaluation, ttl).Error(0)
}

type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) Create(ctx context.Context, line *domain.Line) error {
	return m.Called(ctx, line).Error(0)
}

func (m *MockLineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockLineRepository) List(ctx context.Context, limit, offset int) ([]*domain.Line, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Line, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineRepository) Update(ctx context.Context, line *domain.Line) error {
	return m.Called(ctx, line).Error(0)
}

func (m *MockLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type testEnv struct {
	app     *fiber.App
	routing *MockRoutingRepository
	cache   *MockCacheRepository
	lines   *MockLineRepository
}

func newTestEnv() *testEnv {
	env := &testEnv{
		routing: &MockRoutingRepository{},
		cache:   &MockCacheRepository{},
		lines:   &MockLineRepository{},
	}

	logger := zap.NewNop()
	detourUC := usecase.NewDetourUseCase(env.routing, env.lines, env.cache, logger,
		config.DetourConfig{DefaultCap: 1, MaxConcurrency: 2}, time.Hour)
	lineUC := usecase.NewLineUseCase(env.lines, logger)

	detourHandler := handler.NewDetourHandler(detourUC, logger)
	lineHandler := handler.NewLineHandler(lineUC, logger)

	env.app = fiber.New()
	api := env.app.Group("/api/v1")
	api.Post("/detour/pairs", detourHandler.QueryPairs)
	api.Post("/detour", detourHandler.Evaluate)
	api.Post("/lines", lineHandler.Create)
	api.Get("/lines", lineHandler.List)
	api.Post("/lines/batch", lineHandler.Batch)
	api.Get("/lines/:id", lineHandler.Get)
	api.Put("/lines/:id", lineHandler.Update)
	api.Delete("/lines/:id", lineHandler.Delete)
	api.Get("/lines/:id/detour", detourHandler.EvaluateLine)

	return env
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func (env *testEnv) do(t *testing.T, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func stopsBody() []map[string]any {
	return []map[string]any{
		{"name": "Hauptbahnhof", "lat": 49.80, "lng": 9.93, "realStop": true},
		{"name": "", "lat": 49.80, "lng": 9.94, "realStop": false},
		{"name": "Dom", "lat": 49.80, "lng": 9.95, "realStop": true},
		{"name": "Sanderring", "lat": 49.80, "lng": 9.97, "realStop": true},
	}
}
