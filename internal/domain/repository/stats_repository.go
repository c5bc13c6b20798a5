package repository

import (
	"context"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// StatsRepository aggregates over the stored lines
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
