package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("cache hit", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(statsRepo, cache, zap.NewNop(), ttl)

		data, err := json.Marshal(domain.Statistics{Lines: 4, RealStops: 30})
		require.NoError(t, err)
		cache.On("Get", ctx, "detour:stats").Return(data, nil)

		stats, cached, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.True(t, cached)
		assert.EqualValues(t, 4, stats.Lines)
		statsRepo.AssertNotCalled(t, "GetStatistics", mock.Anything)
	})

	t.Run("cache miss reads the database", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(statsRepo, cache, zap.NewNop(), ttl)

		cache.On("Get", ctx, "detour:stats").Return(nil, nil)
		statsRepo.On("GetStatistics", ctx).Return(&domain.Statistics{Lines: 2, RealStops: 5}, nil)
		cache.On("Set", ctx, "detour:stats", mock.Anything, ttl).Return(nil)

		stats, cached, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.False(t, cached)
		assert.EqualValues(t, 5, stats.RealStops)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(statsRepo, cache, zap.NewNop(), ttl)

		cache.On("Get", ctx, "detour:stats").Return(nil, errors.New("connection refused"))
		statsRepo.On("GetStatistics", ctx).Return(&domain.Statistics{Lines: 1}, nil)
		cache.On("Set", ctx, "detour:stats", mock.Anything, ttl).Return(errors.New("connection refused"))

		stats, _, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.EqualValues(t, 1, stats.Lines)
	})

	t.Run("database error", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(statsRepo, cache, zap.NewNop(), ttl)

		cache.On("Get", ctx, "detour:stats").Return(nil, nil)
		statsRepo.On("GetStatistics", ctx).Return(nil, errors.New("relation does not exist"))

		_, _, err := uc.GetStatistics(ctx)

		assert.Error(t, err)
	})
}

func TestStatsUseCase_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := &MockCacheRepository{}
	uc := usecase.NewStatsUseCase(&MockStatsRepository{}, cache, zap.NewNop(), time.Minute)

	cache.On("Delete", ctx, "detour:stats").Return(nil)

	uc.Invalidate(ctx)

	cache.AssertExpectations(t)
}
