package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (repository.CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCacheRepository(NewRedisFromClient(client, zap.NewNop())), mr
}

func TestCacheRepository_GetSet(t *testing.T) {
	repo, mr := newTestCache(t)
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val, "miss is nil without error")

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))

	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	exists, err := repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Minute)

	exists, err = repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists, "ttl expired")

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, repo.Delete(ctx, "k"))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Stats(t *testing.T) {
	repo, _ := newTestCache(t)
	ctx := context.Background()

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)

	in := &domain.RouteStatistics{
		TotalPlans:    12,
		DegradedPlans: 1,
		AvgStops:      6.5,
		ByProvider:    []domain.ProviderUsage{{Provider: "mapbox", Plans: 12}},
	}
	require.NoError(t, repo.SetStats(ctx, in, time.Minute))

	stats, err = repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, stats)

	require.NoError(t, repo.InvalidateStats(ctx))
	stats, err = repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestCacheRepository_GeocodeKeyNormalized(t *testing.T) {
	repo, _ := newTestCache(t)
	ctx := context.Background()

	result := &domain.GeocodeResult{Query: "Damrak 1 Amsterdam", PlaceName: "Damrak 1, Amsterdam", Lat: 52.3759, Lng: 4.8936}
	require.NoError(t, repo.SetGeocode(ctx, "Damrak 1 Amsterdam", result, time.Hour))

	got, err := repo.GetGeocode(ctx, "  damrak   1 AMSTERDAM ")
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestCacheRepository_CorruptValue(t *testing.T) {
	repo, mr := newTestCache(t)
	require.NoError(t, mr.Set(statsKey, "{not json"))

	_, err := repo.GetStats(context.Background())
	assert.Error(t, err)
}

func TestCacheRepository_RedisDown(t *testing.T) {
	repo, mr := newTestCache(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "k")
	assert.Error(t, err)
}
