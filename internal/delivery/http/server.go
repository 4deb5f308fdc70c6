package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cafe-finder/internal/config"
	"github.com/cafe-finder/internal/delivery/http/handler"
	"github.com/cafe-finder/internal/delivery/http/middleware"
	"github.com/cafe-finder/internal/pkg/errors"
	"github.com/cafe-finder/internal/pkg/metrics"
	"github.com/cafe-finder/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	cafeHandler   *handler.CafeHandler
	statsHandler  *handler.StatsHandler
	healthHandler *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера. statsHandler может быть nil,
// тогда /api/v1/stats не регистрируется.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	cafeHandler *handler.CafeHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	// WriteTimeout covers the full Overpass round trip.
	writeTimeout := cfg.Overpass.RequestTimeout + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:               "Cafe Finder",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          writeTimeout,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		cafeHandler:   cafeHandler,
		statsHandler:  statsHandler,
		healthHandler: healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	s.app.Get("/api/cafes", s.cafeHandler.FindCafes)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthHandler.Check)

	if s.statsHandler != nil {
		api.Get("/stats", s.statsHandler.GetStatistics)
	}
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escaped the handlers (unknown
// routes, panics, framework errors) in the service error envelope.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := errors.As(err); ok {
			return utils.SendError(c, err)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		appErr := errors.ErrInternalServer
		if code < fiber.StatusInternalServerError {
			appErr = errors.New(errorCode(code), err.Error(), code)
		}

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}
