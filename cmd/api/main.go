package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/wexa-dev/studio-api/internal/api/http"
	"github.com/wexa-dev/studio-api/internal/api/http/handlers"
	"github.com/wexa-dev/studio-api/internal/auth"
	"github.com/wexa-dev/studio-api/internal/config"
	"github.com/wexa-dev/studio-api/internal/events"
	"github.com/wexa-dev/studio-api/internal/notify"
	"github.com/wexa-dev/studio-api/internal/observability"
	"github.com/wexa-dev/studio-api/internal/persistence"
	"github.com/wexa-dev/studio-api/internal/repository"
	"github.com/wexa-dev/studio-api/internal/service"
	"github.com/wexa-dev/studio-api/internal/worker"
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
	ticketRepo := repository.NewTicketRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	attachmentRepo := repository.NewAttachmentRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	portfolioRepo := repository.NewPortfolioRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	supportService := service.NewSupportService(service.SupportDependencies{
		TicketRepo:  ticketRepo,
		MessageRepo: messageRepo,
		Dispatcher:  dispatcher,
	})
	projectService := service.NewProjectService(service.ProjectDependencies{
		ProjectRepo:    projectRepo,
		CommentRepo:    commentRepo,
		AttachmentRepo: attachmentRepo,
		UserRepo:       userRepo,
	})
	invoiceService := service.NewInvoiceService(service.InvoiceDependencies{
		InvoiceRepo: invoiceRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	catalogService := service.NewCatalogService(serviceRepo, portfolioRepo)
	settingsService := service.NewSettingsService(settingRepo, redis.Client, logger)
	contactService := service.NewContactService(dispatcher, cfg.Notification.Timeout())

	telegramClient := notify.NewTelegramClient(cfg.Notification.TelegramAPIBase, cfg.Notification.Timeout())
	notificationService := service.NewNotificationService(settingRepo, telegramClient, logger)
	worker.StartNotificationWorker(dispatcher, notificationService)

	if pool != nil {
		seeder := service.NewSeeder(userRepo, serviceRepo, cfg.Seed, cfg.Auth, logger)
		if err := seeder.Run(ctx); err != nil {
			logger.Fatal("failed to seed initial data", zap.Error(err))
		}
	}

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Support:        handlers.NewSupportHandler(supportService),
		Projects:       handlers.NewProjectsHandler(projectService),
		Invoices:       handlers.NewInvoicesHandler(invoiceService),
		Services:       handlers.NewServicesHandler(catalogService),
		Portfolio:      handlers.NewPortfolioHandler(catalogService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		Contact:        handlers.NewContactHandler(contactService),
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
