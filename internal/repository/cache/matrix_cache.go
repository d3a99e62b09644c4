package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"go.uber.org/zap"
)

// CachedMatrixProvider - декоратор провайдера матрицы с кешем в Redis.
// Ключ зависит от провайдера и упорядоченного списка координат, id локаций не участвуют.
type CachedMatrixProvider struct {
	next   repository.MatrixProvider
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedMatrixProvider(
	next repository.MatrixProvider,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *CachedMatrixProvider {
	return &CachedMatrixProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (p *CachedMatrixProvider) Name() string {
	return p.next.Name()
}

// GetMatrix отдает матрицу из кеша или делает ровно один вызов провайдера.
// Ошибки кеша не ломают запрос: идем напрямую в провайдер.
func (p *CachedMatrixProvider) GetMatrix(ctx context.Context, locations []domain.Location) (*domain.TravelMatrix, error) {
	n := len(locations)
	if n < 2 {
		return p.next.GetMatrix(ctx, locations)
	}

	key := MatrixKey(p.next.Name(), locations)

	if m := p.lookup(ctx, key, n); m != nil {
		return m, nil
	}

	m, err := p.next.GetMatrix(ctx, locations)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(m)
	if err != nil {
		p.logger.Warn("Failed to marshal matrix for cache", zap.Error(err))
		return m, nil
	}
	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		p.logger.Warn("Failed to cache matrix", zap.String("key", key), zap.Error(err))
	}

	return m, nil
}

func (p *CachedMatrixProvider) lookup(ctx context.Context, key string, n int) *domain.TravelMatrix {
	data, err := p.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("matrix", "error").Inc()
		p.logger.Warn("Matrix cache unavailable, calling provider directly", zap.Error(err))
		return nil
	}
	if data == nil {
		metrics.CacheLookups.WithLabelValues("matrix", "miss").Inc()
		return nil
	}

	var m domain.TravelMatrix
	if err := json.Unmarshal(data, &m); err != nil || m.Validate(n) != nil {
		metrics.CacheLookups.WithLabelValues("matrix", "error").Inc()
		p.logger.Warn("Discarding corrupt cached matrix", zap.String("key", key))
		return nil
	}

	metrics.CacheLookups.WithLabelValues("matrix", "hit").Inc()
	p.logger.Debug("Matrix served from cache", zap.String("key", key), zap.Int("size", n))
	return &m
}

// MatrixKey - ключ кеша: matrix:{provider}:{sha256 координат в исходном порядке}
func MatrixKey(provider string, locations []domain.Location) string {
	h := sha256.New()
	for _, loc := range locations {
		fmt.Fprintf(h, "%.6f,%.6f;", loc.Lat, loc.Lng)
	}
	return fmt.Sprintf("matrix:%s:%s", provider, hex.EncodeToString(h.Sum(nil)))
}
