package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/config"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/delivery/http/handler"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/delivery/http/middleware"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthCheck reports whether a backing service is reachable
type HealthCheck func(ctx context.Context) error

// Server - HTTP server based on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	detourHandler *handler.DetourHandler
	lineHandler   *handler.LineHandler
	statsHandler  *handler.StatsHandler

	healthChecks map[string]HealthCheck
}

// NewServer - creates a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	detourHandler *handler.DetourHandler,
	lineHandler *handler.LineHandler,
	statsHandler *handler.StatsHandler,
	healthChecks map[string]HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Detour Analyzer",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		detourHandler: detourHandler,
		lineHandler:   lineHandler,
		statsHandler:  statsHandler,
		healthChecks:  healthChecks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the fiber app for in-process requests
func (s *Server) App() *fiber.App {
	return s.app
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

	// Detour routes
	api.Post("/detour/pairs", s.detourHandler.QueryPairs)
	api.Post("/detour", s.detourHandler.Evaluate)

	// Line routes
	api.Post("/lines", s.lineHandler.Create)
	api.Get("/lines", s.lineHandler.List)
	api.Post("/lines/batch", s.lineHandler.Batch)
	api.Get("/lines/:id", s.lineHandler.Get)
	api.Put("/lines/:id", s.lineHandler.Update)
	api.Delete("/lines/:id", s.lineHandler.Delete)
	api.Get("/lines/:id/detour", s.detourHandler.EvaluateLine)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	checks := make(fiber.Map, len(s.healthChecks))
	for name, check := range s.healthChecks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			checks[name] = err.Error()
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - starts the HTTP server
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

// customErrorHandler - errors that escaped the handlers, mostly routing misses
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := errors.ErrInternalServer.Code

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
