package repository

import (
	"context"
	"time"

	"github.com/route-sequencing-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats получает статистику маршрутов, nil при промахе
	GetStats(ctx context.Context) (*domain.RouteStatistics, error)

	// SetStats сохраняет статистику маршрутов
	SetStats(ctx context.Context, stats *domain.RouteStatistics, ttl time.Duration) error

	// InvalidateStats сбрасывает закешированную статистику
	InvalidateStats(ctx context.Context) error

	// GetGeocode получает результат геокодирования по нормализованному запросу, nil при промахе
	GetGeocode(ctx context.Context, query string) (*domain.GeocodeResult, error)

	// SetGeocode сохраняет результат геокодирования
	SetGeocode(ctx context.Context, query string, result *domain.GeocodeResult, ttl time.Duration) error
}
