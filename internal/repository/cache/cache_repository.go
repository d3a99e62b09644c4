package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	statsKey      = "stats:routes"
	geocodePrefix = "geocode:"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.RouteStatistics, error) {
	var stats domain.RouteStatistics
	found, err := r.getJSON(ctx, statsKey, &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.RouteStatistics, ttl time.Duration) error {
	return r.setJSON(ctx, statsKey, stats, ttl)
}

func (r *cacheRepository) InvalidateStats(ctx context.Context) error {
	return r.Delete(ctx, statsKey)
}

func (r *cacheRepository) GetGeocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	var result domain.GeocodeResult
	found, err := r.getJSON(ctx, geocodeKey(query), &result)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

func (r *cacheRepository) SetGeocode(ctx context.Context, query string, result *domain.GeocodeResult, ttl time.Duration) error {
	return r.setJSON(ctx, geocodeKey(query), result, ttl)
}

func geocodeKey(query string) string {
	return geocodePrefix + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}
