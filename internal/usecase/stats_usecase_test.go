package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-sequencing-service/internal/domain"
	apperrors "github.com/route-sequencing-service/internal/pkg/errors"
	"github.com/route-sequencing-service/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := 5 * time.Minute

	stats := &domain.RouteStatistics{TotalPlans: 3, ByProvider: []domain.ProviderUsage{{Provider: "mapbox", Plans: 3}}}

	t.Run("from cache", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(stats, nil)

		uc := usecase.NewStatsUseCase(repo, cache, ttl, logger)

		got, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
		repo.AssertNotCalled(t, "GetStatistics", mock.Anything)
	})

	t.Run("from db on miss", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil)
		repo.On("GetStatistics", ctx).Return(stats, nil)
		cache.On("SetStats", ctx, stats, ttl).Return(nil)

		uc := usecase.NewStatsUseCase(repo, cache, ttl, logger)

		got, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalPlans)
		cache.AssertExpectations(t)
	})

	t.Run("cache failures are not fatal", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, stderrors.New("redis down"))
		repo.On("GetStatistics", ctx).Return(stats, nil)
		cache.On("SetStats", ctx, stats, ttl).Return(stderrors.New("redis down"))

		uc := usecase.NewStatsUseCase(repo, cache, ttl, logger)

		got, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("db error", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil)
		repo.On("GetStatistics", ctx).Return(nil, stderrors.New("timeout"))

		uc := usecase.NewStatsUseCase(repo, cache, ttl, logger)

		_, err := uc.GetStatistics(ctx)
		assert.True(t, stderrors.Is(err, apperrors.ErrDatabaseError))
	})
}
