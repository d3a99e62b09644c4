//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/route-sequencing-service/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовый дневной маршрут: депо и три адреса установки в Амстердаме
	event := domain.RouteOptimizeEvent{
		RequestID: uuid.New(),
		Locations: []domain.Location{
			{ID: "depot", Lat: 52.3676, Lng: 4.9041},
			{ID: "install-1", Lat: 52.3791, Lng: 4.9003},
			{ID: "install-2", Lat: 52.3584, Lng: 4.8811},
			{ID: "install-3", Lat: 52.3731, Lng: 4.8922},
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Последний ID до публикации, чтобы читать только новые ответы
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, domain.StreamRouteDone, "+", "-", 1).Result(); err == nil && len(last) > 0 {
		lastID = last[0].ID
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRouteOptimize,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRouteOptimize)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Locations: %d\n", len(event.Locations))

	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamRouteDone)

	if lastID == "$" {
		lastID = "0"
	}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamRouteDone, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var done domain.RouteDoneEvent
				if err := json.Unmarshal([]byte(dataStr), &done); err != nil {
					continue
				}

				if done.RequestID == event.RequestID {
					fmt.Printf("\nResponse received\n")
					pretty, _ := json.MarshalIndent(done, "", "  ")
					fmt.Printf("%s\n", pretty)
					return
				}
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
