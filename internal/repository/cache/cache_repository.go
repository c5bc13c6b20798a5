package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	apperrors "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const evaluationKeyPrefix = "detour:evaluation:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get: %w: %w", apperrors.ErrCacheError, err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set: %w: %w", apperrors.ErrCacheError, err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete: %w: %w", apperrors.ErrCacheError, err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetEvaluation получает оценку объездов из кеша
func (r *cacheRepository) GetEvaluation(ctx context.Context, key string) (*domain.DetourEvaluation, error) {
	data, err := r.Get(ctx, evaluationKeyPrefix+key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var evaluation domain.DetourEvaluation
	if err := json.Unmarshal(data, &evaluation); err != nil {
		r.logger.Error("Failed to unmarshal evaluation from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal evaluation: %w", err)
	}

	return &evaluation, nil
}

// SetEvaluation сохраняет оценку объездов в кеше
func (r *cacheRepository) SetEvaluation(ctx context.Context, key string, evaluation *domain.DetourEvaluation, ttl time.Duration) error {
	data, err := json.Marshal(evaluation)
	if err != nil {
		r.logger.Error("Failed to marshal evaluation", zap.Error(err))
		return fmt.Errorf("marshal evaluation: %w", err)
	}

	return r.Set(ctx, evaluationKeyPrefix+key, data, ttl)
}
