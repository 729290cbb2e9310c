package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopflow/shopflow-backend/config"
	"github.com/shopflow/shopflow-backend/internal/app/controller"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/router"
	"github.com/shopflow/shopflow-backend/internal/scheduler"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting SHOPFLOW Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize storage. Everything lives in memory and comes pre-seeded;
	// all state is lost on shutdown.
	store := storage.NewMemStorage()
	counts := store.Counts()
	logger.Info("In-memory store seeded", map[string]interface{}{
		"users":      counts.Users,
		"categories": counts.Categories,
		"products":   counts.Products,
	})

	// Initialize services
	authService := service.NewAuthService(store)
	catalogService := service.NewCatalogService(store)
	cartService := service.NewCartService(store)
	orderService := service.NewOrderService(store)
	reportService := service.NewReportService(store)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	categoryController := controller.NewCategoryController(catalogService)
	productController := controller.NewProductController(catalogService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService, reportService)

	// Setup router
	r := router.NewRouter(
		authController,
		categoryController,
		productController,
		cartController,
		orderController,
		cfg,
	)
	engine := r.Setup()

	// Start the periodic stats report
	var statsScheduler *scheduler.StatsScheduler
	if cfg.Stats.Enabled {
		statsScheduler = scheduler.NewStatsScheduler(store, cfg.Stats)
		if err := statsScheduler.Start(); err != nil {
			logger.Warn("Stats scheduler disabled", map[string]interface{}{
				"error": err.Error(),
			})
			statsScheduler = nil
		}
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	if statsScheduler != nil {
		statsScheduler.Stop()
	}
	logger.Info("Server stopped successfully")
}
