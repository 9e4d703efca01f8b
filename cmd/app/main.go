package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grouping-service/api"
	"grouping-service/internal/committer"
	"grouping-service/internal/config"
	"grouping-service/internal/database"
	"grouping-service/internal/domain"
	"grouping-service/internal/events"
	"grouping-service/internal/handler"
	"grouping-service/internal/metrics"
	"grouping-service/internal/repository"
	"grouping-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQLC queries
	queries := database.New(db)

	// Репозитории
	teamRepo := repository.NewTeamRepository(db, queries)
	stageRepo := repository.NewStageRepository(db, queries)

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewPrometheus(registry, "grouping")

	// События
	var publisher domain.EventPublisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			logger.Fatalf("NATS connection failed: %v", err)
		}
		publisher = natsPublisher
		logger.WithField("url", cfg.NATSURL).Info("NATS connected")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close event publisher")
		}
	}()

	// Use Cases
	groupingUC := usecase.NewGroupingUseCase(teamRepo, stageRepo)
	assignmentUC := usecase.NewPoolAssignmentUseCase(teamRepo, stageRepo, publisher, collector, logger)

	commits := committer.New(assignmentUC, collector, logger, committer.Config{
		QueueSize: cfg.CommitQueueSize,
		Workers:   cfg.CommitWorkers,
		Timeout:   cfg.CommitTimeout,
	})
	commits.Start()

	sessionUC := usecase.NewEditorSessionUseCase(teamRepo, stageRepo, commits, collector, logger, cfg.SessionTTL)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sessionUC.RunSweeper(sweepCtx, cfg.SweepInterval)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(groupingUC, assignmentUC, sessionUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}

	stopSweeper()

	// Незафиксированные назначения дописываются до закрытия базы
	if err := commits.Stop(ctx); err != nil {
		logger.WithError(err).Warn("Committer did not drain in time")
	}

	logger.Info("Server exited")
}
