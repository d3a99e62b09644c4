package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRoutePlanRepositoryForTest creates a route plan repository with test database and logger
func NewRoutePlanRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RoutePlanRepository {
	return postgres.NewRoutePlanRepository(NewDBForTest(db, logger), logger)
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger), logger)
}
