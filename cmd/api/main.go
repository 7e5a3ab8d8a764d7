package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/citizen-connect/grievance-service/internal/api/http"
	"github.com/citizen-connect/grievance-service/internal/api/http/handlers"
	"github.com/citizen-connect/grievance-service/internal/config"
	"github.com/citizen-connect/grievance-service/internal/events"
	"github.com/citizen-connect/grievance-service/internal/observability"
	"github.com/citizen-connect/grievance-service/internal/persistence"
	"github.com/citizen-connect/grievance-service/internal/service"
	"github.com/citizen-connect/grievance-service/internal/store"
	"github.com/citizen-connect/grievance-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	grievanceStore, cleanup := buildStore(ctx, cfg, logger, metrics)
	defer cleanup()

	dispatcher := events.NewInMemoryDispatcher()
	grievanceService := service.NewGrievanceService(service.GrievanceDependencies{
		Store:      grievanceStore,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Grievances: handlers.NewGrievancesHandler(grievanceService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// buildStore selects the configured backend. External backends are wrapped
// so any failure degrades to the in-memory store instead of erroring out.
func buildStore(ctx context.Context, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (store.GrievanceStore, func()) {
	memory := store.NewMemoryStore()

	switch cfg.Store.Backend {
	case config.BackendRedis:
		redis := persistence.NewRedis(cfg.Redis, logger)
		primary := store.NewRedisStore(redis.Client, cfg.Redis.KeyPrefix)
		logger.Info("using redis grievance store with in-memory fallback")
		return store.NewFallbackStore(primary, memory, logger, metrics), redis.Close

	case config.BackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil || pg.PoolHandle() == nil {
			logger.Warn("postgres unavailable, using in-memory grievance store", zap.Error(err))
			return memory, func() {}
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		primary := store.NewPostgresStore(pg.PoolHandle())
		logger.Info("using postgres grievance store with in-memory fallback")
		return store.NewFallbackStore(primary, memory, logger, metrics), pg.Close

	default:
		logger.Info("using in-memory grievance store")
		return memory, func() {}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
