package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/cashit_ledger/internal/core/services"
	"github.com/SscSPs/cashit_ledger/internal/handlers"
	"github.com/SscSPs/cashit_ledger/internal/middleware"
	"github.com/SscSPs/cashit_ledger/internal/platform/config"
	"github.com/SscSPs/cashit_ledger/internal/platform/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := middleware.WithLogger(context.Background(), logger)

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open ledger store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing ledger store", slog.String("error", cerr.Error()))
		}
	}()

	ledger, err := services.OpenLedger(ctx, store, services.WithAdminSecret(cfg.AdminSecret))
	if err != nil {
		logger.Error("Failed to load ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	serviceContainer := services.NewServiceContainer(ledger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_driver", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
