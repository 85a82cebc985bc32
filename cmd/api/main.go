package main

// @title Transit Network API
// @version 1.0.0
// @description Сервис справочника транспортной сети: остановки, линии, компании-перевозчики, расписания
// @description и связи остановка-линия с ожидаемым временем прохождения.
// @description
// @description Основные возможности:
// @description - CRUD для остановок, линий, компаний и расписаний
// @description - Связи остановка-линия с уникальностью (остановка, линия, время)
// @description - Выборки по остановке, линии и интервалу времени
// @description - Пространственные запросы: остановки в радиусе, линии через полигон

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

	"go.uber.org/zap"

	_ "github.com/transit-network/docs"
	"github.com/transit-network/internal/config"
	httpDelivery "github.com/transit-network/internal/delivery/http"
	"github.com/transit-network/internal/delivery/http/handler"
	"github.com/transit-network/internal/pkg/logger"
	"github.com/transit-network/internal/repository/postgres"
	"github.com/transit-network/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transit Network API")
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

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 5. Initialize repositories
	stopRepo := postgres.NewBusStopRepository(db)
	lineRepo := postgres.NewBusLineRepository(db)
	stopLineRepo := postgres.NewStopLineRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)

	// 6. Initialize use cases
	network := usecase.NewNetworkUseCase(
		usecase.NewBusStopUseCase(stopRepo, stopLineRepo, log),
		usecase.NewBusLineUseCase(lineRepo, companyRepo, stopLineRepo, log),
		usecase.NewStopLineUseCase(stopLineRepo, stopRepo, lineRepo, log),
		usecase.NewScheduleUseCase(scheduleRepo, log),
		usecase.NewCompanyUseCase(companyRepo, lineRepo, log),
		log,
	)

	// 7. Initialize HTTP handlers and server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Health:    handler.NewHealthHandler(db, log),
		BusStops:  handler.NewBusStopHandler(network, log),
		BusLines:  handler.NewBusLineHandler(network, log),
		StopLines: handler.NewStopLineHandler(network, log),
		Schedules: handler.NewScheduleHandler(network, log),
		Companies: handler.NewCompanyHandler(network, log),
	})

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

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
