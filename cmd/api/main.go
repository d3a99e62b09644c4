package main

// @title Route Sequencing Service API
// @version 1.0.0
// @description Построение маршрутов выездов монтажников p1Meter: порядок точек, переезды и итоги.
// @description
// @description Основные возможности:
// @description - Построение маршрута жадным алгоритмом ближайшего соседа
// @description - История построенных маршрутов и статистика
// @description - Прямое геокодирование адресов с кешированием

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/route-sequencing-service/docs"
	"github.com/route-sequencing-service/internal/config"
	httpDelivery "github.com/route-sequencing-service/internal/delivery/http"
	"github.com/route-sequencing-service/internal/delivery/http/handler"
	"github.com/route-sequencing-service/internal/infrastructure"
	"github.com/route-sequencing-service/internal/infrastructure/mapbox"
	"github.com/route-sequencing-service/internal/pkg/logger"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"github.com/route-sequencing-service/internal/repository/cache"
	"github.com/route-sequencing-service/internal/repository/postgres"
	"github.com/route-sequencing-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	metrics.Register()

	log.Info("Starting Route Sequencing Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("routing_provider", cfg.Routing.Provider),
		zap.Int("max_locations", cfg.Routing.MaxLocations),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks and migrations
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	// 6. Initialize repositories and providers
	cacheRepo := cache.NewCacheRepository(redisClient)
	planRepo := postgres.NewRoutePlanRepository(db, log)
	statsRepo := postgres.NewStatsRepository(db, log)

	upstream, err := infrastructure.NewMatrixProvider(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize matrix provider", zap.Error(err))
	}
	matrixProvider := cache.NewCachedMatrixProvider(upstream, cacheRepo, cfg.Cache.MatrixCacheTTL, log)

	// Геокодирование всегда через Mapbox, независимо от провайдера матрицы
	geocoder := mapbox.NewMapboxClient(&cfg.Mapbox, log)

	// 7. Initialize use cases
	routeUC := usecase.NewRouteUseCase(
		matrixProvider,
		planRepo,
		cacheRepo,
		cfg.Routing.MaxLocations,
		log,
	)
	geocodeUC := usecase.NewGeocodeUseCase(geocoder, cacheRepo, cfg.Cache.GeocodeCacheTTL, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	// 8. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		geocodeHandler,
		statsHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
