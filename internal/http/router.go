package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/newsletter-studio/backend/internal/config"
	"github.com/newsletter-studio/backend/internal/http/handlers"
	"github.com/newsletter-studio/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	issueHandler *handlers.IssueHandler,
	blockHandler *handlers.BlockHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", userHandler.GetMe)
	protected.Post("/me/ping", userHandler.Ping)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Issues (campaign-scoped where the parent is part of the contract)
	protected.Post("/campaigns/:campaignId/issues", issueHandler.CreateIssue)
	protected.Get("/campaigns/:campaignId/issues", issueHandler.ListIssues)
	protected.Put("/campaigns/:campaignId/issues/:id", issueHandler.UpdateIssue)
	protected.Delete("/campaigns/:campaignId/issues/:id", issueHandler.DeleteIssue)
	protected.Get("/issues/:id", issueHandler.GetIssue)
	protected.Get("/issues/:id/links", blockHandler.LinkReport)

	// Blocks
	protected.Post("/issues/:issueId/blocks", blockHandler.CreateBlock)
	protected.Get("/issues/:issueId/blocks", blockHandler.ListBlocks)
	protected.Put("/issues/:issueId/blocks/:id", blockHandler.UpdateBlock)
	protected.Delete("/issues/:issueId/blocks/:id", blockHandler.DeleteBlock)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
