package main

// @title Cafe Finder API
// @version 1.0.0
// @description Прокси к Overpass API (OpenStreetMap) для поиска кафе в прямоугольной области.

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

	_ "github.com/cafe-finder/docs"
	"github.com/cafe-finder/internal/config"
	httpDelivery "github.com/cafe-finder/internal/delivery/http"
	"github.com/cafe-finder/internal/delivery/http/handler"
	"github.com/cafe-finder/internal/domain/repository"
	"github.com/cafe-finder/internal/infrastructure/overpass"
	"github.com/cafe-finder/internal/pkg/logger"
	redisRepo "github.com/cafe-finder/internal/repository/redis"
	"github.com/cafe-finder/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cafe Finder")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("overpass_url", cfg.Overpass.URL),
		zap.Bool("stats_enabled", cfg.Stats.Enabled),
	)

	// 3. Overpass client
	overpassRepo := overpass.NewOverpassClient(&cfg.Overpass, log)

	// 4. Statistics store (optional)
	var (
		redisClient *redisRepo.Redis
		statsRepo   repository.StatsRepository
	)
	if cfg.Stats.Enabled {
		redisClient, err = redisRepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		statsRepo = redisRepo.NewStatsRepository(redisClient.Client(), cfg.Stats.Key, log)
		log.Info("Search statistics enabled", zap.String("key", cfg.Stats.Key))
	}

	// 5. Use cases and handlers
	cafeUC := usecase.NewCafeUseCase(overpassRepo, statsRepo, log)
	cafeHandler := handler.NewCafeHandler(cafeUC, log)

	var statsHandler *handler.StatsHandler
	if statsRepo != nil {
		statsHandler = handler.NewStatsHandler(usecase.NewStatsUseCase(statsRepo, log), log)
	}

	healthChecks := map[string]handler.HealthChecker{}
	if redisClient != nil {
		healthChecks["redis"] = redisClient
	}
	healthHandler := handler.NewHealthHandler(healthChecks, log)

	// 6. HTTP server
	server := httpDelivery.NewServer(cfg, log, cafeHandler, statsHandler, healthHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
