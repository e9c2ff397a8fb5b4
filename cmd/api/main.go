package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/teleassist/ticketing-service/internal/ai"
	httptransport "github.com/teleassist/ticketing-service/internal/api/http"
	"github.com/teleassist/ticketing-service/internal/api/http/handlers"
	"github.com/teleassist/ticketing-service/internal/auth"
	"github.com/teleassist/ticketing-service/internal/config"
	"github.com/teleassist/ticketing-service/internal/events"
	"github.com/teleassist/ticketing-service/internal/observability"
	"github.com/teleassist/ticketing-service/internal/persistence"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/internal/service"
	"github.com/teleassist/ticketing-service/internal/worker"
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
	teamRepo := repository.NewTeamRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	txRunner := repository.NewTxRunner(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	var assistant ai.TriageAssistant
	if cfg.Triage.UseMockAssistant {
		assistant = ai.MockAssistant{ModelName: cfg.Triage.MockAssistantModelName}
	} else {
		assistant = ai.NewHTTPAssistant(cfg.Triage.AssistantURL, cfg.Triage.AssistantTimeout())
	}
	assistant = ai.NewCachedAssistant(assistant, redis.Client, cfg.Triage.SuggestionCacheTTL(), logger)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(userRepo, tokenManager, cfg.Auth.BcryptCost)
	authMiddleware := auth.NewAuthMiddleware(tokenManager, userRepo)

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   ticketRepo,
		UserRepo:     userRepo,
		TeamRepo:     teamRepo,
		ActivityRepo: activityRepo,
		FeedbackRepo: feedbackRepo,
		TxRunner:     txRunner,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	activityService := service.NewActivityService(ticketRepo, activityRepo)
	triageService := service.NewTriageService(ticketRepo, activityRepo, assistant, logger)
	teamService := service.NewTeamService(teamRepo, userRepo, txRunner)
	queryService := service.NewQueryService(ticketRepo)
	reportingService := service.NewReportingService(ticketRepo, feedbackRepo)
	notificationService := service.NewNotificationService(activityRepo, dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Customer:       handlers.NewCustomerTicketsHandler(ticketService, activityService, notificationService),
		Agent:          handlers.NewAgentTicketsHandler(ticketService, notificationService),
		Triage:         handlers.NewTriageHandler(ticketService, triageService),
		Engineer:       handlers.NewEngineerHandler(ticketService, activityService),
		TeamLead:       handlers.NewTeamLeadHandler(ticketService, teamService),
		Manager:        handlers.NewManagerHandler(queryService, reportingService),
		Staff:          handlers.NewStaffHandler(ticketService, activityService),
		AuthMiddleware: authMiddleware,
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
