package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylekart/internal/config"
	"stylekart/internal/database"
	"stylekart/internal/handler"
	"stylekart/internal/repository"
	"stylekart/internal/router"
	"stylekart/internal/service"
	"stylekart/internal/upload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting stylekart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize document store connection
	client, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from document store")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)
	profileRepo := repository.NewProfileRepository(db, logger)

	// Initialize image store with S3 and local fallback
	localStore, err := upload.NewLocalStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize local image store: %w", err)
	}

	imageStore := localStore
	if cfg.Storage.S3Enabled {
		s3Store, err := upload.NewS3Store(ctx, cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.S3Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 image store, falling back to local file system only")
		} else {
			imageStore = upload.NewFallbackStore(s3Store, localStore, true, logger)
		}
	} else {
		logger.Info().Msg("using local file system for product images (S3 disabled)")
	}

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, logger)
	identityService := service.NewIdentityService(userRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)
	profileService := service.NewProfileService(profileRepo, userRepo, logger)
	analyticsService := service.NewAnalyticsService(userRepo, productRepo, orderRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogService, imageStore, logger)
	authHandler := handler.NewAuthHandler(identityService, logger)
	wishlistHandler := handler.NewWishlistHandler(identityService, logger)
	cartHandler := handler.NewCartHandler(identityService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	// Initialize router
	mux := router.New(
		productHandler,
		authHandler,
		wishlistHandler,
		cartHandler,
		orderHandler,
		profileHandler,
		analyticsHandler,
		cfg.Storage.UploadDir,
		cfg.Auth.AdminAPIKey,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
