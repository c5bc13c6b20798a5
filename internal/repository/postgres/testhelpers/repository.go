package testhelpers

import (
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewLineRepositoryForTest creates a line repository on the test database
func NewLineRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LineRepository {
	return postgres.NewLineRepository(postgres.NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository on the test database
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(postgres.NewDBForTest(db, logger))
}
