package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/delivery/http/handler"
	"github.com/route-sequencing-service/internal/delivery/http/middleware"
	"github.com/route-sequencing-service/internal/pkg/errors"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"github.com/route-sequencing-service/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routeHandler   *handler.RouteHandler
	geocodeHandler *handler.GeocodeHandler
	statsHandler   *handler.StatsHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	geocodeHandler *handler.GeocodeHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Sequencing Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		routeHandler:   routeHandler,
		geocodeHandler: geocodeHandler,
		statsHandler:   statsHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS(s.config.CORSOriginList()))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	// Routes
	routes := api.Group("/routes")
	routes.Post("/optimize", s.routeHandler.OptimizeRoute)
	routes.Get("/plans", s.routeHandler.ListRoutePlans)
	routes.Get("/plans/:id", s.routeHandler.GetRoutePlan)

	// Geocoding
	api.Get("/geocode", s.geocodeHandler.Geocode)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// App - доступ к fiber.App (используется в тестах через app.Test)
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

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паники).
// Текст внутренних ошибок клиенту не отдается.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: errors.New("HTTP_ERROR", e.Message, e.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, errors.ErrInternalServer)
	}
}
