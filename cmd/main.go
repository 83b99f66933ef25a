package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wedding/guesthub/internal/config"
	"wedding/guesthub/internal/handler"
	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/internal/service"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

func main() {
	configPath := "config.yaml"
	if p := os.Getenv("GUESTHUB_CONFIG"); p != "" {
		configPath = p
	}

	// 1. Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 3. Connect to the guest database
	db, err := config.NewDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access connection pool", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize state store (Redis or in-memory)
	var stateStore repository.StateStore
	switch cfg.State.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		stateStore = repository.NewRedisStateStore(redisClient, cfg.Database.Redis.KeyPrefix)
		logger.Info("using Redis state store")
	case "memory":
		stateStore = repository.NewMemoryStateStore()
		logger.Info("using in-memory state store")
	default:
		logger.Fatal("unknown state backend", zap.String("backend", cfg.State.Backend))
	}

	// 6. Initialize repositories
	guestRepo := repository.NewGormGuestRepository(db)
	wishRepo := repository.NewGormWishRepository(db)
	adminRepo := repository.NewGormAdminRepository(db)
	settingsRepo := repository.NewGormEventSettingsRepository(db)

	// 7. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL)

	// 8. Initialize services
	identity := service.IdentityOptions{
		QRLength:    cfg.Identity.QRLength,
		MaxAttempts: cfg.Identity.MaxCreateAttempts,
	}
	invitation := service.InvitationOptions{
		PublicBaseURL:    cfg.Invitation.PublicBaseURL,
		PhoneCountryCode: cfg.Invitation.PhoneCountryCode,
	}
	authService := service.NewAuthService(adminRepo, stateStore, jwtManager, logger)
	rsvpService := service.NewRSVPService(guestRepo, identity, logger)
	checkInService := service.NewCheckInService(guestRepo, logger)
	wishService := service.NewWishService(wishRepo, guestRepo, identity, logger)
	guestService := service.NewGuestService(guestRepo, wishRepo, settingsRepo, identity, invitation, logger)
	eventService := service.NewEventService(settingsRepo)

	// 9. Seed the dashboard account
	if cfg.Admin.BootstrapUsername != "" && cfg.Admin.BootstrapPassword != "" {
		created, err := authService.EnsureAdmin(context.Background(), cfg.Admin.BootstrapUsername, cfg.Admin.BootstrapPassword)
		if err != nil {
			logger.Fatal("failed to bootstrap admin", zap.Error(err))
		}
		if created {
			logger.Info("admin account created", zap.String("username", cfg.Admin.BootstrapUsername))
		}
	}

	// 10. Initialize handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	checkInHandler := handler.NewCheckInHandler(checkInService, logger)
	rsvpHandler := handler.NewRSVPHandler(rsvpService, logger)
	guestHandler := handler.NewGuestHandler(guestService, logger)
	wishHandler := handler.NewWishHandler(wishService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)

	// 11. Setup router
	router := handler.SetupRouter(
		cfg, logger, sqlDB, jwtManager, authService, stateStore,
		authHandler, checkInHandler, rsvpHandler, guestHandler, wishHandler, eventHandler,
	)

	// 12. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 13. Start server with graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 14. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
	}
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
