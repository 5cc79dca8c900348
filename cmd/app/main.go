package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/cache"
	"pr-metrics-dashboard/internal/config"
	"pr-metrics-dashboard/internal/database"
	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/github"
	"pr-metrics-dashboard/internal/handler"
	"pr-metrics-dashboard/internal/metrics"
	"pr-metrics-dashboard/internal/notify"
	"pr-metrics-dashboard/internal/repository"
	"pr-metrics-dashboard/internal/usecase"
	"pr-metrics-dashboard/internal/worker"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
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
		logger.Fatalf("Config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.Logging.Level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// База данных (database/sql + миграции)
	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	queries := database.New(db)
	dbx := sqlx.NewDb(db, "pgx")

	// Кэш агрегатов
	var aggCache domain.AggregationCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, aggregation cache disabled")
		} else {
			defer rdb.Close()
			aggCache = cache.NewRedisCache(rdb, cfg.Cache.Prefix, cfg.Cache.TTL)
			logger.Info("Redis connected")
		}
	}

	// GitHub
	source, err := github.NewClient(cfg.GitHub, &http.Client{Timeout: 30 * time.Second}, logger)
	if err != nil {
		logger.Fatalf("GitHub client init failed: %v", err)
	}

	// Репозитории
	prRepo := repository.NewPRRepository(db, queries)
	syncRepo := repository.NewSyncRepository(db, queries)
	snapshotRepo := repository.NewSnapshotRepository(db, queries)
	hierarchyRepo := repository.NewHierarchyRepository(db, queries)
	similarityRepo := repository.NewSimilarityRepository(db, queries)
	aggregationRepo := repository.NewAggregationRepository(dbx)
	dashboardRepo := repository.NewDashboardRepository(dbx)
	locker := repository.NewAdvisoryLocker(db)

	normalizer := domain.NewDomainNormalizer(cfg.Domains.Allowed)
	hub := notify.NewHub(cfg.Notify.BufferSize, logger)
	queue := worker.NewQueue()

	// Use Cases
	similarityUC := usecase.NewSimilarityUseCase(similarityRepo, prRepo, logger)
	hierarchyUC := usecase.NewHierarchyUseCase(hierarchyRepo, aggCache, hub, logger)
	aggregationUC := usecase.NewAggregationUseCase(
		aggregationRepo, aggCache, normalizer, cfg.Labels.DeliveryReady, cfg.Labels.Rejected, logger,
	)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, snapshotRepo, syncRepo, normalizer)
	syncUC := usecase.NewSyncUseCase(usecase.SyncDeps{
		Source:     source,
		PRs:        prRepo,
		State:      syncRepo,
		Snapshots:  snapshotRepo,
		Hierarchy:  hierarchyRepo,
		Similarity: similarityUC,
		Cache:      aggCache,
		Locker:     locker,
		Queue:      queue,
		Publisher:  hub,
		Normalizer: normalizer,
	}, usecase.SyncOptions{
		Policy: domain.SyncPolicy{
			StalenessThreshold: cfg.Sync.StalenessThreshold,
			LookbackDays:       cfg.Sync.LookbackDays,
		},
		ReworkCountsCheckFailures: cfg.Sync.ReworkCountsCheckFailures,
		FetchConcurrency:          cfg.Sync.FetchConcurrency,
		ComplexityTiers:           cfg.Labels.ComplexityTiers,
	}, logger)

	if err := syncUC.RecoverInterrupted(ctx); err != nil {
		logger.WithError(err).Warn("Failed to recover interrupted sync runs")
	}

	// Фоновая синхронизация
	workerCtx, cancelWorker := context.WithCancel(ctx)
	w := worker.NewWorker(queue, syncUC, syncUC, cfg.Sync.Interval, cfg.Sync.StartDelay, logger)
	w.Start(workerCtx)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)
	e.Use(middleware.Recover())
	if len(cfg.Server.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.Server.CORSOrigins}))
	} else {
		e.Use(middleware.CORS())
	}
	e.Use(handler.MetricsMiddleware())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(dashboardUC, aggregationUC, syncUC, hierarchyUC, similarityUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/ws", handler.NewWSHandler(hub, cfg.Notify.PingInterval, logger).Serve)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/health", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		logger.Infof("Server listening on %s", cfg.ServerAddr())
		if err := e.Start(cfg.ServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Server stopped: %v", err)
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}

	cancelWorker()
	w.Wait()

	logger.Info("Server exited")
}
