package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/pkg/errors"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"github.com/route-sequencing-service/internal/pkg/routing"
	"github.com/route-sequencing-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultPlansLimit = 20
	maxPlansLimit     = 100
)

// RouteUseCase строит маршрут обхода: одна матрица от провайдера, жадный тур, маршрутный лист
type RouteUseCase struct {
	provider     repository.MatrixProvider
	planRepo     repository.RoutePlanRepository
	cacheRepo    repository.CacheRepository
	maxLocations int
	logger       *zap.Logger
}

// NewRouteUseCase создает новый экземпляр RouteUseCase
func NewRouteUseCase(
	provider repository.MatrixProvider,
	planRepo repository.RoutePlanRepository,
	cacheRepo repository.CacheRepository,
	maxLocations int,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		provider:     provider,
		planRepo:     planRepo,
		cacheRepo:    cacheRepo,
		maxLocations: maxLocations,
		logger:       logger,
	}
}

// OptimizeRoute упорядочивает локации, начиная с первой.
// Меньше двух локаций - порядок как во входе, нулевые итоги, провайдер не вызывается.
func (uc *RouteUseCase) OptimizeRoute(ctx context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizeRouteResponse, error) {
	locations := req.ToDomain()

	if uc.maxLocations > 0 && len(locations) > uc.maxLocations {
		return nil, errors.ErrTooManyLocations.WithDetails(map[string]interface{}{
			"max":   uc.maxLocations,
			"given": len(locations),
		})
	}

	if len(locations) < 2 {
		metrics.RoutesOptimized.WithLabelValues("trivial").Inc()
		return dto.NewOptimizeRouteResponse(domain.LocationIDs(locations), domain.Itinerary{}), nil
	}

	start := time.Now()

	m, err := uc.provider.GetMatrix(ctx, locations)
	if err != nil {
		metrics.RoutesOptimized.WithLabelValues("failed").Inc()
		uc.logger.Error("Failed to get travel matrix",
			zap.String("provider", uc.provider.Name()),
			zap.Int("locations", len(locations)),
			zap.Bool("provider_unavailable", stderrors.Is(err, domain.ErrProviderUnavailable)),
			zap.Error(err))
		return nil, errors.ErrRouteOptimizationFailed
	}

	tour, itinerary := routing.Sequence(m, locations)
	resp := dto.NewOptimizeRouteResponse(routing.OrderIDs(tour, locations), itinerary)

	if itinerary.Degraded {
		metrics.RoutesOptimized.WithLabelValues("degraded").Inc()
		uc.logger.Warn("Route contains unreachable legs",
			zap.Strings("order", resp.Order))
	} else {
		metrics.RoutesOptimized.WithLabelValues("ok").Inc()
	}

	if planID, ok := uc.savePlan(ctx, resp, len(locations)); ok {
		resp.PlanID = &planID
	}

	uc.logger.Info("Route optimized",
		zap.Int("locations", len(locations)),
		zap.Int64("total_duration_minutes", resp.TotalDurationMinutes),
		zap.Float64("total_distance_km", resp.TotalDistanceKm),
		zap.Duration("elapsed", time.Since(start)))

	return resp, nil
}

// savePlan сохраняет маршрут; ошибка хранилища только логируется
func (uc *RouteUseCase) savePlan(ctx context.Context, resp *dto.OptimizeRouteResponse, count int) (uuid.UUID, bool) {
	if uc.planRepo == nil {
		return uuid.Nil, false
	}

	plan := &domain.RoutePlan{
		ID:                   uuid.New(),
		Order:                resp.Order,
		LocationCount:        count,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalDistanceKm:      resp.TotalDistanceKm,
		Degraded:             resp.Degraded,
		Provider:             uc.provider.Name(),
		CreatedAt:            time.Now().UTC(),
	}

	if err := uc.planRepo.Save(ctx, plan); err != nil {
		uc.logger.Warn("Failed to save route plan", zap.Error(err))
		return uuid.Nil, false
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.InvalidateStats(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
		}
	}

	return plan.ID, true
}

// GetRoutePlan возвращает сохраненный маршрут
func (uc *RouteUseCase) GetRoutePlan(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error) {
	plan, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get route plan", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if plan == nil {
		return nil, errors.ErrRoutePlanNotFound
	}
	return plan, nil
}

// ListRoutePlans возвращает последние сохраненные маршруты
func (uc *RouteUseCase) ListRoutePlans(ctx context.Context, req dto.ListRoutePlansRequest) (*dto.RoutePlanListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPlansLimit
	}
	if limit > maxPlansLimit {
		limit = maxPlansLimit
	}

	plans, err := uc.planRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list route plans", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if plans == nil {
		plans = []*domain.RoutePlan{}
	}

	return &dto.RoutePlanListResponse{Plans: plans}, nil
}
