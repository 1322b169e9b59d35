package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ledgerlens/internal/api"
	"ledgerlens/internal/api/handlers"
	"ledgerlens/internal/repository"
	"ledgerlens/internal/service"
	"ledgerlens/pkg/config"
	"ledgerlens/pkg/logger"
	"ledgerlens/pkg/postgres"

	"go.uber.org/zap"
)

// @title LedgerLens API
// @version 1.0
// @description Receipt and bank statement extraction backed by a vision-language model.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting LedgerLens service")

	ctx := context.Background()

	// Persistence is optional: with no DB_HOST the service runs
	// extraction-only and storage endpoints answer 503.
	var receiptRepo *repository.ReceiptRepository
	var txRepo *repository.TransactionRepository
	var receiptStore service.ReceiptStore
	var txStore service.TransactionStore

	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		receiptRepo = repository.NewReceiptRepository(pool, appLogger)
		txRepo = repository.NewTransactionRepository(pool, appLogger)
		receiptStore = receiptRepo
		txStore = txRepo
	} else {
		appLogger.Info("DB_HOST not set, persistence disabled")
	}

	visionService := service.NewVisionService(&cfg.Qwen, appLogger)
	extractionService := service.NewExtractionService(visionService, receiptStore, txStore, &cfg.Pipeline, appLogger)
	reliefService := service.NewReliefService(visionService, appLogger)

	receiptHandler := handlers.NewReceiptHandler(extractionService, reliefService, receiptRepo, cfg.Upload.MaxSize, appLogger)
	statementHandler := handlers.NewStatementHandler(extractionService, txRepo, cfg.Upload.MaxSize, appLogger)
	convertHandler := handlers.NewConvertHandler(appLogger)

	app := api.SetupRouter(receiptHandler, statementHandler, convertHandler, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
