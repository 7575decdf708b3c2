package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/newsletter-studio/backend/internal/config"
	"github.com/newsletter-studio/backend/internal/db"
	"github.com/newsletter-studio/backend/internal/events"
	apphttp "github.com/newsletter-studio/backend/internal/http"
	"github.com/newsletter-studio/backend/internal/http/handlers"
	"github.com/newsletter-studio/backend/internal/repositories"
	"github.com/newsletter-studio/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	issueRepo := repositories.NewIssueRepo(pool)
	blockRepo := repositories.NewBlockRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	campaignService := services.NewCampaignService(campaignRepo, auditRepo, publisher, log)
	issueService := services.NewIssueService(issueRepo, campaignRepo, auditRepo, publisher, log)
	blockService := services.NewBlockService(blockRepo, issueRepo, campaignRepo, auditRepo, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	issueHandler := handlers.NewIssueHandler(issueService, log)
	blockHandler := handlers.NewBlockHandler(blockService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, userHandler, campaignHandler, issueHandler, blockHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
