package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"go.uber.org/zap"
)

const routePlanColumns = `id, stop_order, location_count, total_duration_minutes,
	total_distance_km, degraded, provider, created_at`

type routePlanRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRoutePlanRepository создает репозиторий сохраненных маршрутов
func NewRoutePlanRepository(db *DB, logger *zap.Logger) repository.RoutePlanRepository {
	return &routePlanRepository{
		db:     db,
		logger: logger,
	}
}

// routePlanRow - строка route_plans, text[] читается через pq.StringArray
type routePlanRow struct {
	ID                   uuid.UUID      `db:"id"`
	StopOrder            pq.StringArray `db:"stop_order"`
	LocationCount        int            `db:"location_count"`
	TotalDurationMinutes int64          `db:"total_duration_minutes"`
	TotalDistanceKm      float64        `db:"total_distance_km"`
	Degraded             bool           `db:"degraded"`
	Provider             string         `db:"provider"`
	CreatedAt            sql.NullTime   `db:"created_at"`
}

func (row *routePlanRow) toDomain() *domain.RoutePlan {
	order := []string(row.StopOrder)
	if order == nil {
		order = []string{}
	}
	plan := &domain.RoutePlan{
		ID:                   row.ID,
		Order:                order,
		LocationCount:        row.LocationCount,
		TotalDurationMinutes: row.TotalDurationMinutes,
		TotalDistanceKm:      row.TotalDistanceKm,
		Degraded:             row.Degraded,
		Provider:             row.Provider,
	}
	if row.CreatedAt.Valid {
		plan.CreatedAt = row.CreatedAt.Time
	}
	return plan
}

func (r *routePlanRepository) Save(ctx context.Context, plan *domain.RoutePlan) error {
	query := `
		INSERT INTO route_plans (` + routePlanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		plan.ID,
		pq.Array(plan.Order),
		plan.LocationCount,
		plan.TotalDurationMinutes,
		plan.TotalDistanceKm,
		plan.Degraded,
		plan.Provider,
		plan.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to save route plan", zap.String("id", plan.ID.String()), zap.Error(err))
		return fmt.Errorf("insert route plan: %w", err)
	}

	return nil
}

func (r *routePlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error) {
	query := `SELECT ` + routePlanColumns + ` FROM route_plans WHERE id = $1`

	var row routePlanRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route plan %s: %w", id, err)
	}

	return row.toDomain(), nil
}

func (r *routePlanRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RoutePlan, error) {
	query := `SELECT ` + routePlanColumns + ` FROM route_plans ORDER BY created_at DESC LIMIT $1`

	var rows []routePlanRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list route plans: %w", err)
	}

	plans := make([]*domain.RoutePlan, len(rows))
	for i := range rows {
		plans[i] = rows[i].toDomain()
	}
	return plans, nil
}
