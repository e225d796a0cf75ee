package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-till/internal/config"
	"cafe-till/internal/database"
	"cafe-till/internal/handler"
	"cafe-till/internal/menuseed"
	"cafe-till/internal/repository"
	"cafe-till/internal/router"
	"cafe-till/internal/service"
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
	logger.Info().Msg("starting cafe-till server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(pool, logger)
	txRepo := repository.NewTransactionRepository(pool, logger)

	// Seed the menu from the built-in list, a local file, or S3
	seedLoader := menuseed.NewLoader(ctx, cfg.MenuSeed, logger)
	if err := service.SeedMenu(ctx, menuRepo, seedLoader, cfg.MenuSeed.File, logger); err != nil {
		return err
	}

	// Initialize services
	tillService, err := service.NewTillService(ctx, menuRepo, txRepo, cfg.Till.CurrencySymbol, logger)
	if err != nil {
		return err
	}
	txService := service.NewTransactionService(txRepo, logger)

	// Initialize HTTP handlers
	tillHandler := handler.NewTillHandler(tillService, logger)
	txHandler := handler.NewTransactionHandler(txService, logger)

	// Initialize router
	mux := router.New(tillHandler, txHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
