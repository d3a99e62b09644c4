package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/usecase/dto"
)

// RouteService - операции над маршрутами, которые нужны хендлеру
type RouteService interface {
	OptimizeRoute(ctx context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizeRouteResponse, error)
	GetRoutePlan(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error)
	ListRoutePlans(ctx context.Context, req dto.ListRoutePlansRequest) (*dto.RoutePlanListResponse, error)
}

type GeocodeService interface {
	Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error)
}

type StatsService interface {
	GetStatistics(ctx context.Context) (*domain.RouteStatistics, error)
}

// HealthChecker - зависимость, доступность которой проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}
