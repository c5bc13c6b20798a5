package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// MockRoutingRepository is a mock of RoutingRepository
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

// MockCacheRepository is a mock of CacheRepository
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
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetEvaluation(ctx context.Context, key string) (*domain.DetourEvaluation, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetourEvaluation), args.Error(1)
}

func (m *MockCacheRepository) SetEvaluation(ctx context.Context, key string, evaluation *domain.DetourEvaluation, ttl time.Duration) error {
	args := m.Called(ctx, key, evaluation, ttl)
	return args.Error(0)
}

// MockLineRepository is a mock of LineRepository
type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) Create(ctx context.Context, line *domain.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
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
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
