package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

type totalsRow struct {
	TotalPlans         int          `db:"total_plans"`
	DegradedPlans      int          `db:"degraded_plans"`
	AvgStops           float64      `db:"avg_stops"`
	AvgDurationMinutes float64      `db:"avg_duration_minutes"`
	AvgDistanceKm      float64      `db:"avg_distance_km"`
	LastPlanAt         sql.NullTime `db:"last_plan_at"`
}

// GetStatistics возвращает агрегированную статистику по сохраненным маршрутам
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.RouteStatistics, error) {
	totals, err := r.getTotals(ctx)
	if err != nil {
		r.logger.Error("failed to get route totals", zap.Error(err))
		return nil, fmt.Errorf("get route totals: %w", err)
	}

	byProvider, err := r.getProviderUsage(ctx)
	if err != nil {
		r.logger.Error("failed to get provider usage", zap.Error(err))
		return nil, fmt.Errorf("get provider usage: %w", err)
	}

	stats := &domain.RouteStatistics{
		TotalPlans:         totals.TotalPlans,
		DegradedPlans:      totals.DegradedPlans,
		AvgStops:           totals.AvgStops,
		AvgDurationMinutes: totals.AvgDurationMinutes,
		AvgDistanceKm:      totals.AvgDistanceKm,
		ByProvider:         byProvider,
	}
	if totals.LastPlanAt.Valid {
		t := totals.LastPlanAt.Time
		stats.LastPlanAt = &t
	}

	return stats, nil
}

func (r *statsRepository) getTotals(ctx context.Context) (*totalsRow, error) {
	query := `
		SELECT
			COUNT(*) AS total_plans,
			COUNT(*) FILTER (WHERE degraded) AS degraded_plans,
			COALESCE(AVG(location_count), 0) AS avg_stops,
			COALESCE(AVG(total_duration_minutes), 0) AS avg_duration_minutes,
			COALESCE(AVG(total_distance_km), 0) AS avg_distance_km,
			MAX(created_at) AS last_plan_at
		FROM route_plans
	`

	var row totalsRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *statsRepository) getProviderUsage(ctx context.Context) ([]domain.ProviderUsage, error) {
	query := `
		SELECT provider, COUNT(*) AS plans
		FROM route_plans
		GROUP BY provider
		ORDER BY plans DESC, provider
	`

	usage := []domain.ProviderUsage{}
	if err := r.db.SelectContext(ctx, &usage, query); err != nil {
		return nil, err
	}
	return usage, nil
}
