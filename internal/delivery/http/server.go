package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/config"
	"github.com/transit-directory/internal/delivery/http/handler"
	"github.com/transit-directory/internal/delivery/http/middleware"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/usecase"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server is the Fiber HTTP server wiring middlewares, route tiers and
// handlers together.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUseCase *usecase.AuthUseCase

	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	vehicleHandler  *handler.VehicleHandler
	locationHandler *handler.TransportLocationHandler
	favoriteHandler *handler.FavoriteHandler

	db    HealthChecker
	cache HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUseCase *usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	vehicleHandler *handler.VehicleHandler,
	locationHandler *handler.TransportLocationHandler,
	favoriteHandler *handler.FavoriteHandler,
	db HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Directory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		authUseCase:     authUseCase,
		authHandler:     authHandler,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		vehicleHandler:  vehicleHandler,
		locationHandler: locationHandler,
		favoriteHandler: favoriteHandler,
		db:              db,
		cache:           cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Public tier: read-only catalog access, registration and login.
	api.Post("/auth/register", s.authHandler.Register)
	api.Post("/auth/login", s.authHandler.Login)

	api.Get("/categories", s.categoryHandler.List)
	api.Get("/categories/:id", s.categoryHandler.GetByID)
	api.Get("/vehicles", s.vehicleHandler.List)
	api.Get("/vehicles/:id", s.vehicleHandler.GetByID)
	api.Get("/transport-locations", s.locationHandler.List)
	api.Get("/transport-locations/nearby", s.locationHandler.Nearby)
	api.Get("/transport-locations/:id", s.locationHandler.GetByID)

	// User tier: requires a valid, non-revoked token.
	authed := api.Group("", middleware.RequireAuth(s.authUseCase))
	authed.Post("/auth/logout", s.authHandler.Logout)
	authed.Get("/users/me", s.userHandler.GetMe)
	authed.Patch("/users/me", s.userHandler.UpdateMe)
	authed.Get("/favorites/me", s.favoriteHandler.ListMine)
	authed.Post("/favorites/me", s.favoriteHandler.AddMine)
	authed.Delete("/favorites/me/:locationId", s.favoriteHandler.RemoveMine)

	// Admin tier: full management of every collection.
	admin := api.Group("", middleware.RequireAuth(s.authUseCase), middleware.RequireAdmin())
	admin.Post("/users", s.userHandler.Create)
	admin.Get("/users", s.userHandler.List)
	admin.Get("/users/:id", s.userHandler.GetByID)
	admin.Patch("/users/:id", s.userHandler.Update)
	admin.Delete("/users/:id", s.userHandler.Delete)

	admin.Post("/categories", s.categoryHandler.Create)
	admin.Patch("/categories/:id", s.categoryHandler.Update)
	admin.Delete("/categories/:id", s.categoryHandler.Delete)

	admin.Post("/vehicles", s.vehicleHandler.Create)
	admin.Patch("/vehicles/:id", s.vehicleHandler.Update)
	admin.Delete("/vehicles/:id", s.vehicleHandler.Delete)

	admin.Post("/transport-locations", s.locationHandler.Create)
	admin.Patch("/transport-locations/:id", s.locationHandler.Update)
	admin.Delete("/transport-locations/:id", s.locationHandler.Delete)

	admin.Get("/favorites", s.favoriteHandler.List)
	admin.Post("/favorites", s.favoriteHandler.Add)
	admin.Delete("/favorites/:userId/:locationId", s.favoriteHandler.Remove)
}

// health pings both backing stores; the endpoint degrades to 503 when
// either is unreachable.
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := fiber.Map{
		"postgres": "ok",
		"redis":    "ok",
	}
	if err := s.db.Health(ctx); err != nil {
		checks["postgres"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}
	if err := s.cache.Health(ctx); err != nil {
		checks["redis"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": checks,
		"time":   time.Now(),
	})
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if appErr, ok := err.(*errors.AppError); ok {
			code = appErr.StatusCode
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
