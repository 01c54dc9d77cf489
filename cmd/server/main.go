package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/handlers"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/services/jobs"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations: join tables first so the association rows keep the
	// municipal column names
	if err := models.SetupJoinTables(db.DB); err != nil {
		logger.Fatal("Failed to register join tables", zap.Error(err))
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed the lookup catalogs on first boot
	if err := services.SeedReferenceData(db.DB); err != nil {
		logger.Fatal("Failed to seed reference data", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	// Middleware
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.Recover())

	handlers.RegisterRoutes(e, cfg)

	// Nightly follow-up report
	scheduler := jobs.StartScheduler(db.DB, logger)
	defer scheduler.Stop()

	// Start server
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
