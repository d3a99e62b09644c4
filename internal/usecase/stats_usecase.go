package usecase

import (
	"context"
	"time"

	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// StatsUseCase обрабатывает бизнес-логику для статистики маршрутов
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.RouteStatistics, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Получаем из БД и кешируем
	return uc.RefreshStatistics(ctx)
}

// RefreshStatistics принудительно обновляет статистику
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.RouteStatistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get statistics from db", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.ttl); err != nil {
		// Не возвращаем ошибку, т.к. данные уже получены
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}
