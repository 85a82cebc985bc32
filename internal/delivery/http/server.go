package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/transit-network/internal/config"
	"github.com/transit-network/internal/delivery/http/handler"
	"github.com/transit-network/internal/delivery/http/middleware"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/utils"
)

// Handlers - набор обработчиков, которые регистрирует сервер
type Handlers struct {
	Health    *handler.HealthHandler
	BusStops  *handler.BusStopHandler
	BusLines  *handler.BusLineHandler
	StopLines *handler.StopLineHandler
	Schedules *handler.ScheduleHandler
	Companies *handler.CompanyHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Network",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Check)

	// Stops. /nearby до /:id
	stops := api.Group("/bus-stops")
	stops.Post("/", s.handlers.BusStops.Create)
	stops.Get("/", s.handlers.BusStops.List)
	stops.Get("/nearby", s.handlers.BusStops.Nearby)
	stops.Get("/:id/board", s.handlers.BusStops.Board)
	stops.Get("/:id", s.handlers.BusStops.GetByID)
	stops.Put("/:id", s.handlers.BusStops.Update)
	stops.Delete("/:id", s.handlers.BusStops.Delete)

	lines := api.Group("/bus-lines")
	lines.Post("/", s.handlers.BusLines.Create)
	lines.Get("/", s.handlers.BusLines.List)
	lines.Post("/intersecting", s.handlers.BusLines.Intersecting)
	lines.Get("/:id", s.handlers.BusLines.GetByID)
	lines.Put("/:id", s.handlers.BusLines.Update)
	lines.Delete("/:id", s.handlers.BusLines.Delete)

	stopLines := api.Group("/stop-lines")
	stopLines.Post("/", s.handlers.StopLines.Create)
	stopLines.Get("/", s.handlers.StopLines.List)
	stopLines.Get("/by-stop/:stopId/time-range", s.handlers.StopLines.ByStopAndTimeRange)
	stopLines.Get("/by-stop/:stopId", s.handlers.StopLines.ByStop)
	stopLines.Get("/by-line/:lineId", s.handlers.StopLines.ByLine)
	stopLines.Get("/:id", s.handlers.StopLines.GetByID)
	stopLines.Put("/:id", s.handlers.StopLines.Update)
	stopLines.Delete("/:id", s.handlers.StopLines.Delete)

	schedules := api.Group("/bus-line-schedules")
	schedules.Post("/", s.handlers.Schedules.Create)
	schedules.Get("/", s.handlers.Schedules.List)
	schedules.Get("/:id", s.handlers.Schedules.GetByID)
	schedules.Put("/:id", s.handlers.Schedules.Update)
	schedules.Delete("/:id", s.handlers.Schedules.Delete)

	companies := api.Group("/companies")
	companies.Post("/", s.handlers.Companies.Create)
	companies.Get("/", s.handlers.Companies.List)
	companies.Get("/:id", s.handlers.Companies.GetByID)
	companies.Put("/:id", s.handlers.Companies.Update)
	companies.Delete("/:id", s.handlers.Companies.Delete)
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

// customErrorHandler - ошибки, не обработанные хендлерами (404 роутера, 405, паники).
// Ответ в том же конверте, что и SendError.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", e.Code), zap.Error(err))
			}
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: errors.New(codeForStatus(e.Code), e.Message, e.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "ROUTE_NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_SERVER_ERROR"
	}
	return "INVALID_REQUEST"
}
