package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/infrastructure"
	"github.com/route-sequencing-service/internal/pkg/logger"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"github.com/route-sequencing-service/internal/repository/cache"
	"github.com/route-sequencing-service/internal/repository/postgres"
	redisRepo "github.com/route-sequencing-service/internal/repository/redis"
	"github.com/route-sequencing-service/internal/usecase"
	"github.com/route-sequencing-service/internal/worker"
	"github.com/route-sequencing-service/internal/worker/route"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	metrics.Register()

	log.Info("Starting Route Optimize Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("event_timeout", cfg.Worker.EventTimeout),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("routing_provider", cfg.Routing.Provider))

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

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(migrateCtx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrateCancel()

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	planRepo := postgres.NewRoutePlanRepository(db, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	upstream, err := infrastructure.NewMatrixProvider(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize matrix provider", zap.Error(err))
	}
	matrixProvider := cache.NewCachedMatrixProvider(upstream, cacheRepo, cfg.Cache.MatrixCacheTTL, log)

	// 6. Initialize use cases
	routeUC := usecase.NewRouteUseCase(
		matrixProvider,
		planRepo,
		cacheRepo,
		cfg.Routing.MaxLocations,
		log,
	)

	// 7. Initialize workers
	optimizeWorker := route.NewOptimizeWorker(
		streamRepo,
		routeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.EventTimeout,
		cfg.Worker.MaxRetries,
		cfg.Worker.ClaimMinIdle,
		log,
	)

	workerManager := worker.NewWorkerManager(cfg.Worker.ShutdownTimeout, log)
	workerManager.Register(optimizeWorker)

	// 8. Start and wait for shutdown signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Сначала Stop: текущий batch дорабатывает, потом отменяем контекст
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
