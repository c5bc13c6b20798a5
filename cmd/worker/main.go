package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/config"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/infrastructure/osrm"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/logger"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/repository/cache"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/repository/postgres"
	redisRepo "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/repository/redis"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/worker"
	detourWorker "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/worker/detour"
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
	log, err := logger.New(cfg.Log.Level, "detour-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Detour Evaluation Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Int("max_concurrency", cfg.Detour.MaxConcurrency))

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

	// 5. Repositories
	lineRepo := postgres.NewLineRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	routingRepo := osrm.NewClient(&cfg.Routing, log)

	// 6. Use cases
	detourUC := usecase.NewDetourUseCase(
		routingRepo,
		lineRepo,
		cacheRepo,
		log,
		cfg.Detour,
		cfg.Cache.DetourCacheTTL,
	)

	// 7. Workers
	evaluationWorker := detourWorker.NewEvaluationWorker(
		streamRepo,
		detourUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(evaluationWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// workers finish the evaluation in progress before Stop returns
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
