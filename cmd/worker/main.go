package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/infrastructure/googleplaces"
	"github.com/tourism-backend/internal/pkg/logger"
	"github.com/tourism-backend/internal/repository/cache"
	"github.com/tourism-backend/internal/repository/postgres"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/worker"
	"github.com/tourism-backend/internal/worker/feedcache"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Feed Cache Warmer")
	log.Info("Configuration loaded",
		zap.Duration("warm_interval", cfg.Worker.WarmInterval),
		zap.Strings("warm_interests", cfg.Worker.WarmInterests))

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

	// 5. Initialize repositories
	cityRepo := postgres.NewCityRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	placesRepo := googleplaces.NewGooglePlacesClient(&cfg.Google, log)

	// 6. Initialize use cases
	feedUC := usecase.NewFeedUseCase(
		placesRepo,
		cityRepo,
		cacheRepo,
		log,
		&cfg.Google,
		cfg.Cache.FeedCacheTTL,
	)

	// 7. Initialize workers
	warmerWorker := feedcache.NewFeedWarmerWorker(
		feedUC,
		cityRepo,
		cacheRepo,
		cfg.Worker.WarmInterests,
		cfg.Worker.WarmInterval,
		cfg.Cache.FeedCacheTTL,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(warmerWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
