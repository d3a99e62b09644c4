package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/route-sequencing-service/internal/domain"
)

// MockMatrixProvider is a mock of MatrixProvider
type MockMatrixProvider struct {
	mock.Mock
}

func (m *MockMatrixProvider) GetMatrix(ctx context.Context, locations []domain.Location) (*domain.TravelMatrix, error) {
	args := m.Called(ctx, locations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelMatrix), args.Error(1)
}

func (m *MockMatrixProvider) Name() string {
	return "mock"
}

// MockRoutePlanRepository is a mock of RoutePlanRepository
type MockRoutePlanRepository struct {
	mock.Mock
}

func (m *MockRoutePlanRepository) Save(ctx context.Context, plan *domain.RoutePlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockRoutePlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RoutePlan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoutePlan), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.RouteStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStatistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.RouteStatistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, query string, result *domain.GeocodeResult, ttl time.Duration) error {
	args := m.Called(ctx, query, result, ttl)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.RouteStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStatistics), args.Error(1)
}

// MockGeocodeRepository is a mock of GeocodeRepository
type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) Forward(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}
