package main

// @title SafeDumaGuide API
// @version 1.0.0
// @description Backend API for the SafeDumaGuide community safety app. Serves the
// @description directory of safety-relevant places (police stations, hospitals,
// @description evacuation centers), emergency hotlines, safety tips and incident
// @description reporting for residents of Dumaguete City.

// @contact.name API Support
// @contact.email support@safedumaguide.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/safedumaguide/api/docs"
	"github.com/safedumaguide/api/internal/config"
	httpDelivery "github.com/safedumaguide/api/internal/delivery/http"
	"github.com/safedumaguide/api/internal/delivery/http/handler"
	"github.com/safedumaguide/api/internal/delivery/http/middleware"
	"github.com/safedumaguide/api/internal/pkg/logger"
	"github.com/safedumaguide/api/internal/pkg/token"
	"github.com/safedumaguide/api/internal/repository/cache"
	"github.com/safedumaguide/api/internal/repository/postgres"
	"github.com/safedumaguide/api/internal/repository/storage"
	"github.com/safedumaguide/api/internal/usecase"
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

	log.Info("Starting SafeDumaGuide API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
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

	// 6. Initialize Repositories
	categoryRepo := postgres.NewCategoryRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	safetyRepo := postgres.NewSafetyRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	avatarStorage := storage.NewAvatarStorage(&cfg.Storage, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	directoryUC := usecase.NewDirectoryUseCase(
		categoryRepo,
		placeRepo,
		cacheRepo,
		log,
		cfg.Cache.CategoriesTTL,
	)

	authUC := usecase.NewAuthUseCase(
		profileRepo,
		tokens,
		cfg.Auth.TokenTTL,
		log,
	)

	profileUC := usecase.NewProfileUseCase(
		profileRepo,
		avatarStorage,
		log,
	)

	reportUC := usecase.NewReportUseCase(reportRepo, log)

	safetyUC := usecase.NewSafetyUseCase(
		safetyRepo,
		cacheRepo,
		log,
		cfg.Cache.SafetyTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	authMiddleware := middleware.NewAuth(tokens)
	authHandler := handler.NewAuthHandler(authUC, log)
	directoryHandler := handler.NewDirectoryHandler(directoryUC, log)
	profileHandler := handler.NewProfileHandler(profileUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	safetyHandler := handler.NewSafetyHandler(safetyUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authMiddleware,
		authHandler,
		directoryHandler,
		profileHandler,
		reportHandler,
		safetyHandler,
	)

	log.Info("HTTP server initialized")

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

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
