package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-sequencing-service/internal/domain"
	redisRepo "github.com/route-sequencing-service/internal/repository/redis"
)

const (
	testStream = "test:stream:route:optimize"
	testGroup  = "test-group"
)

// newTestRedisClient поднимает miniredis на время теста
func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func testEvent() *domain.RouteOptimizeEvent {
	return &domain.RouteOptimizeEvent{
		RequestID: uuid.New(),
		Locations: []domain.Location{
			{ID: "depot", Lat: 52.37, Lng: 4.90},
			{ID: "visit-1", Lat: 52.09, Lng: 5.12},
		},
	}
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	exists, err := client.Exists(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists, "MKSTREAM creates the stream")

	// Повторное создание не ошибка (BUSYGROUP)
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	done := &domain.RouteDoneEvent{
		RequestID:            uuid.New(),
		Order:                []string{"depot", "b", "a"},
		TotalDurationMinutes: 17,
		TotalDistanceKm:      5.4,
	}
	require.NoError(t, repo.PublishToStream(ctx, domain.StreamRouteDone, done))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{domain.StreamRouteDone, "0"},
		Count:   1,
		Block:   -1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.RouteDoneEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, done.RequestID, received.RequestID)
	assert.Equal(t, []string{"depot", "b", "a"}, received.Order)
	assert.Equal(t, int64(17), received.TotalDurationMinutes)
}

func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	t.Run("empty stream returns immediately", func(t *testing.T) {
		start := time.Now()
		messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
		require.NoError(t, err)
		assert.Empty(t, messages)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("reads up to max count", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.PublishToStream(ctx, testStream, testEvent()))
		}

		messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 2)
		require.NoError(t, err)
		require.Len(t, messages, 2)

		var event domain.RouteOptimizeEvent
		require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &event))
		assert.Len(t, event.Locations, 2)

		rest, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}

func TestStreamRepository_AckMessages(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
	require.NoError(t, repo.PublishToStream(ctx, testStream, testEvent()))
	require.NoError(t, repo.PublishToStream(ctx, testStream, testEvent()))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	pending, err := client.XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testStream, testGroup, messages[0].ID))
	require.NoError(t, repo.AckMessages(ctx, testStream, testGroup, []string{messages[1].ID}))
	assert.NoError(t, repo.AckMessages(ctx, testStream, testGroup, nil))

	pending, err = client.XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ClaimPending(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mr.SetTime(now)

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
	event := testEvent()
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	first, err := repo.ConsumeBatch(ctx, testStream, testGroup, "host-1", 10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Без ACK новые чтения сообщение больше не отдают
	again, err := repo.ConsumeBatch(ctx, testStream, testGroup, "host-1", 10)
	require.NoError(t, err)
	assert.Empty(t, again)

	t.Run("not idle long enough", func(t *testing.T) {
		claimed, err := repo.ClaimPending(ctx, testStream, testGroup, "host-2", time.Minute, 10)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("restarted consumer reclaims idle message", func(t *testing.T) {
		mr.SetTime(now.Add(2 * time.Minute))

		claimed, err := repo.ClaimPending(ctx, testStream, testGroup, "host-2", time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, first[0].ID, claimed[0].ID)

		var received domain.RouteOptimizeEvent
		require.NoError(t, json.Unmarshal([]byte(claimed[0].Data), &received))
		assert.Equal(t, event.RequestID, received.RequestID)

		require.NoError(t, repo.AckMessages(ctx, testStream, testGroup, []string{claimed[0].ID}))

		pending, err := client.XPending(ctx, testStream, testGroup).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), pending.Count)
	})

	t.Run("nothing pending", func(t *testing.T) {
		claimed, err := repo.ClaimPending(ctx, testStream, testGroup, "host-2", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, claimed)
	})
}

func TestStreamRepository_ClaimPending_UnknownGroup(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.PublishToStream(ctx, testStream, testEvent()))

	_, err := repo.ClaimPending(ctx, testStream, "missing-group", "host-1", time.Minute, 10)
	assert.Error(t, err)
}
