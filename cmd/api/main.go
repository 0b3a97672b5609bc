package main

// @title Transit Directory API
// @version 1.0.0
// @description REST backend for a transit-location directory. Catalog of
// @description transport locations grouped by category and vehicle, with
// @description nearby search by great-circle distance, per-user favorites
// @description and a two-tier (user/admin) JWT authorization model.

// @contact.name API Support
// @contact.email support@transit-directory.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
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

	"go.uber.org/zap"

	_ "github.com/transit-directory/docs/swagger"
	"github.com/transit-directory/internal/config"
	httpDelivery "github.com/transit-directory/internal/delivery/http"
	"github.com/transit-directory/internal/delivery/http/handler"
	"github.com/transit-directory/internal/pkg/logger"
	"github.com/transit-directory/internal/pkg/password"
	"github.com/transit-directory/internal/repository/cache"
	"github.com/transit-directory/internal/repository/postgres"
	"github.com/transit-directory/internal/usecase"
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

	log.Info("Starting Transit Directory")
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

	// 5. Health checks and schema migration
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Schema migration failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	locationRepo := postgres.NewTransportLocationRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	tokenRepo := cache.NewTokenRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	hasher, err := password.NewHasher(cfg.Auth.PasswordPepper)
	if err != nil {
		log.Fatal("Failed to initialize password hasher", zap.Error(err))
	}

	authUC := usecase.NewAuthUseCase(
		userRepo,
		tokenRepo,
		hasher,
		log,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
	)
	userUC := usecase.NewUserUseCase(userRepo, hasher, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, log)
	locationUC := usecase.NewTransportLocationUseCase(
		locationRepo,
		categoryRepo,
		vehicleRepo,
		log,
		cfg.Search.NearbyQueryTimeout,
	)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, locationRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	categoryHandler := handler.NewCategoryHandler(categoryUC, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleUC, log)
	locationHandler := handler.NewTransportLocationHandler(locationUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		authHandler,
		userHandler,
		categoryHandler,
		vehicleHandler,
		locationHandler,
		favoriteHandler,
		db,
		redisClient,
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

	log.Info("Server stopped")
}
