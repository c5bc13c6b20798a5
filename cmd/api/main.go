package main

// @title Route Detour Analyzer API
// @version 1.0.0
// @description Detour statistics for public transit lines: how much longer the line is between two stops than the direct route.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

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

	_ "github.com/fafeitsch/Route-Detour-Analyzer-sub000/docs/swagger"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/config"
	httpDelivery "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/delivery/http"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/delivery/http/handler"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/infrastructure/osrm"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/logger"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/repository/cache"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/repository/postgres"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "detour-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Detour Analyzer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("routing_url", cfg.Routing.BaseURL),
		zap.Int("default_cap", cfg.Detour.DefaultCap),
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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Repositories
	lineRepo := postgres.NewLineRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	statsRepo := postgres.NewStatsRepository(db)
	routingRepo := osrm.NewClient(&cfg.Routing, log)

	// 7. Use cases
	detourUC := usecase.NewDetourUseCase(
		routingRepo,
		lineRepo,
		cacheRepo,
		log,
		cfg.Detour,
		cfg.Cache.DetourCacheTTL,
	)
	lineUC := usecase.NewLineUseCase(lineRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)
	lineUC.OnChange(statsUC.Invalidate)

	// 8. HTTP handlers and server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewDetourHandler(detourUC, log),
		handler.NewLineHandler(lineUC, log),
		handler.NewStatsHandler(statsUC, log),
		map[string]httpDelivery.HealthCheck{
			"postgres": db.Health,
			"redis":    redisClient.Health,
		},
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
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
