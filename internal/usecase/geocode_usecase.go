package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/pkg/errors"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"go.uber.org/zap"
)

// GeocodeUseCase - прямое геокодирование адресов с явным кешем в Redis
type GeocodeUseCase struct {
	geocoder  repository.GeocodeRepository
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	logger    *zap.Logger
}

// NewGeocodeUseCase создает новый экземпляр GeocodeUseCase
func NewGeocodeUseCase(
	geocoder repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

// Geocode возвращает координаты адреса. Сначала кеш, затем провайдер.
func (uc *GeocodeUseCase) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"q": "required"})
	}

	cached, err := uc.cacheRepo.GetGeocode(ctx, query)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("geocode", "error").Inc()
		uc.logger.Warn("Failed to get geocode from cache", zap.Error(err))
	} else if cached != nil {
		metrics.CacheLookups.WithLabelValues("geocode", "hit").Inc()
		return cached, nil
	} else {
		metrics.CacheLookups.WithLabelValues("geocode", "miss").Inc()
	}

	result, err := uc.geocoder.Forward(ctx, query)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrGeocodeFailed
	}
	if result == nil {
		return nil, errors.ErrGeocodeNotFound
	}

	if err := uc.cacheRepo.SetGeocode(ctx, query, result, uc.ttl); err != nil {
		uc.logger.Warn("Failed to cache geocode", zap.Error(err))
	}

	return result, nil
}
