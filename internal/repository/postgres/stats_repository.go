package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{LastUpdated: time.Now().UTC()}

	err := r.db.GetContext(ctx, stats, `
		SELECT
			(SELECT COUNT(*) FROM lines)                     AS lines,
			COUNT(*)                                          AS entries,
			COUNT(*) FILTER (WHERE real_stop)                 AS real_stops,
			COUNT(*) FILTER (WHERE NOT real_stop)             AS waypoints
		FROM line_stops`)
	if err != nil {
		r.logger.Error("Failed to get line stats", zap.Error(err))
		return nil, dbError("get line stats", err)
	}

	if stats.Lines > 0 {
		stats.AverageStopsPerLine = float64(stats.RealStops) / float64(stats.Lines)
	}

	longest, err := r.longestLine(ctx)
	if err != nil {
		return nil, err
	}
	stats.LongestLine = longest

	return stats, nil
}

// longestLine возвращает имя линии с наибольшим числом остановок
func (r *statsRepository) longestLine(ctx context.Context) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, `
		SELECT l.name
		FROM lines l
		JOIN line_stops s ON s.line_id = l.id AND s.real_stop
		GROUP BY l.id, l.name
		ORDER BY COUNT(*) DESC, l.name
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.logger.Error("Failed to get longest line", zap.Error(err))
		return "", dbError("get longest line", err)
	}
	return name, nil
}
