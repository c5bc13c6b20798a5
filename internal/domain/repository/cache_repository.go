package repository

import (
	"context"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// CacheRepository - key/value cache
type CacheRepository interface {
	// Get returns nil, nil on a cache miss
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// GetEvaluation returns a cached detour evaluation, nil on a miss
	GetEvaluation(ctx context.Context, key string) (*domain.DetourEvaluation, error)

	SetEvaluation(ctx context.Context, key string, evaluation *domain.DetourEvaluation, ttl time.Duration) error
}
