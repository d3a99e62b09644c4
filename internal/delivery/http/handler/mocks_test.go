package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/usecase/dto"
	"github.com/stretchr/testify/mock"
)

type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) OptimizeRoute(ctx context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizeRouteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OptimizeRouteResponse), args.Error(1)
}

func (m *MockRouteService) GetRoutePlan(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutePlan), args.Error(1)
}

func (m *MockRouteService) ListRoutePlans(ctx context.Context, req dto.ListRoutePlansRequest) (*dto.RoutePlanListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RoutePlanListResponse), args.Error(1)
}

type MockGeocodeService struct {
	mock.Mock
}

func (m *MockGeocodeService) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStatistics(ctx context.Context) (*domain.RouteStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStatistics), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
