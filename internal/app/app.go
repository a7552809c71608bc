package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"inflo_backend/internal/config"
	"inflo_backend/internal/fixtures"
	"inflo_backend/internal/handlers"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/middleware"
	"inflo_backend/internal/repositories"
	"inflo_backend/internal/routes"
	"inflo_backend/internal/services"
	"inflo_backend/internal/sms"
	"inflo_backend/internal/validator"
	"inflo_backend/internal/workers"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires repositories, services and handlers into a gin engine.
// It is the single composition point, shared by Run and the test server.
func SetupRouter(cfg *config.Config) (*gin.Engine, *repositories.Repositories) {
	mockLatency := time.Duration(cfg.Mock.LatencyMS) * time.Millisecond
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMin) * time.Minute

	repos := &repositories.Repositories{
		Users:         repositories.NewUserRepository(),
		Campaigns:     repositories.NewCampaignRepository(fixtures.Campaigns()),
		Creators:      repositories.NewCreatorRepository(fixtures.Creators()),
		Billing:       repositories.NewBillingRepository(),
		Content:       repositories.NewContentRepository(),
		Notifications: repositories.NewNotificationRepository(),
	}

	container := &services.ServiceContainer{
		AuthService: services.NewAuthService(
			repos.Users, repos.Billing, repos.Notifications,
			sms.NewMockProvider(),
			cfg.Auth.MockOTPCode, cfg.Auth.JWTSecret,
			tokenTTL, mockLatency,
		),
		CampaignService:     services.NewCampaignService(repos.Campaigns, cfg.Mock.Seed, mockLatency),
		CreatorService:      services.NewCreatorService(repos.Creators, mockLatency),
		BillingService:      services.NewBillingService(repos.Billing, repos.Users, mockLatency),
		ContentService:      services.NewContentService(repos.Content, mockLatency),
		NotificationService: services.NewNotificationService(repos.Notifications, mockLatency),
	}

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, container.AuthService, cfg.Auth.JWTSecret),
		CampaignHandler:     handlers.NewCampaignHandler(base, container.CampaignService, cfg.Auth.JWTSecret),
		CreatorHandler:      handlers.NewCreatorHandler(base, container.CreatorService),
		BillingHandler:      handlers.NewBillingHandler(base, container.BillingService, cfg.Auth.JWTSecret),
		ContentHandler:      handlers.NewContentHandler(base, container.ContentService, cfg.Auth.JWTSecret),
		NotificationHandler: handlers.NewNotificationHandler(base, container.NotificationService, cfg.Auth.JWTSecret),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Server.Env == "test" {
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "users": repos.Users.CountAll()})
	})

	routes.RegisterRoutes(router, appHandlers)
	return router, repos
}

// Run starts the HTTP server and the trial worker and blocks until SIGINT or
// SIGTERM, then shuts both down gracefully.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	router, repos := SetupRouter(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := workers.NewTrialWorker(repos.Users, repos.Notifications, time.Minute)
	go worker.Start(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Shutdown failed")
		return err
	}
	return nil
}
