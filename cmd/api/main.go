package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/tostadas-valencia/case-service/internal/api/http"
	"github.com/tostadas-valencia/case-service/internal/api/http/handlers"
	"github.com/tostadas-valencia/case-service/internal/config"
	"github.com/tostadas-valencia/case-service/internal/events"
	"github.com/tostadas-valencia/case-service/internal/observability"
	"github.com/tostadas-valencia/case-service/internal/persistence"
	"github.com/tostadas-valencia/case-service/internal/repository"
	"github.com/tostadas-valencia/case-service/internal/service"
	"github.com/tostadas-valencia/case-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	caseRepo := repository.NewCaseRepository(pool)
	assigneeRepo := repository.NewAssigneeRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(userRepo, dispatcher)
	caseService := service.NewCaseService(caseRepo, userRepo)
	assigneeService := service.NewAssigneeService(assigneeRepo)
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		CaseRepo:     caseRepo,
		UserRepo:     userRepo,
		AssigneeRepo: assigneeRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:     handlers.NewUsersHandler(userService),
		Cases:     handlers.NewCasesHandler(caseService, intakeService),
		Assignees: handlers.NewAssigneesHandler(assigneeService),
		Metrics:   metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
