package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"go.uber.org/zap"
)

const statsCacheKey = "detour:stats"

// StatsUseCase отдает статистику по линиям, кешируя ее ненадолго
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStatistics возвращает статистику и признак того, что она взята из кеша
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, bool, error) {
	// 1. Проверяем кеш
	data, err := uc.cacheRepo.Get(ctx, statsCacheKey)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	} else if data != nil {
		var stats domain.Statistics
		if err := json.Unmarshal(data, &stats); err == nil {
			uc.logger.Debug("Statistics fetched from cache")
			return &stats, true, nil
		}
		uc.logger.Warn("Discarding unreadable cached stats")
	}

	// 2. Получаем из БД
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get statistics from db: %w", err)
	}

	// 3. Кешируем до следующего запроса
	if data, err := json.Marshal(stats); err == nil {
		if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, false, nil
}

// Invalidate сбрасывает кеш статистики после изменения линий
func (uc *StatsUseCase) Invalidate(ctx context.Context) {
	if err := uc.cacheRepo.Delete(ctx, statsCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}
