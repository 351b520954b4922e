package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/safedumaguide/api/internal/config"
	"github.com/safedumaguide/api/internal/delivery/http/handler"
	"github.com/safedumaguide/api/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	auth   *middleware.Auth

	// Handlers
	authHandler      *handler.AuthHandler
	directoryHandler *handler.DirectoryHandler
	profileHandler   *handler.ProfileHandler
	reportHandler    *handler.ReportHandler
	safetyHandler    *handler.SafetyHandler
}

// NewServer - create a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	auth *middleware.Auth,
	authHandler *handler.AuthHandler,
	directoryHandler *handler.DirectoryHandler,
	profileHandler *handler.ProfileHandler,
	reportHandler *handler.ReportHandler,
	safetyHandler *handler.SafetyHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SafeDumaGuide API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    5 * 1024 * 1024, // avatar uploads
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		auth:             auth,
		authHandler:      authHandler,
		directoryHandler: directoryHandler,
		profileHandler:   profileHandler,
		reportHandler:    reportHandler,
		safetyHandler:    safetyHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - register global middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - register routes
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", s.authHandler.Register)
	auth.Post("/sign-in", s.authHandler.SignIn)
	auth.Post("/change-password", s.auth.Required(), s.authHandler.ChangePassword)

	// Directory routes. Reads work for anonymous viewers, writes need a token.
	api.Get("/directory", s.auth.Optional(), s.directoryHandler.List)
	api.Get("/directory/places/:id", s.auth.Optional(), s.directoryHandler.Get)
	api.Post("/directory/places", s.auth.Required(), s.directoryHandler.Create)
	api.Put("/directory/places/:id", s.auth.Required(), s.directoryHandler.Update)
	api.Delete("/directory/places/:id", s.auth.Required(), s.directoryHandler.Delete)

	// Profile routes
	api.Get("/profile", s.auth.Required(), s.profileHandler.Get)
	api.Put("/profile", s.auth.Required(), s.profileHandler.Update)
	api.Post("/profile/avatar", s.auth.Required(), s.profileHandler.UploadAvatar)

	// Emergency report routes
	api.Post("/reports", s.auth.Required(), s.reportHandler.Submit)
	api.Get("/reports", s.auth.Required(), s.reportHandler.ListMine)

	// Safety reference data
	api.Get("/safety/contacts", s.safetyHandler.Contacts)
	api.Get("/safety/tips", s.safetyHandler.Tips)
}

// Start - start the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - fallback error handler
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
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
