package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/api"
	"github.com/printhaus/shopapi/internal/cloudinary"
	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/mail"
	"github.com/printhaus/shopapi/internal/repository/mongodb"
	"github.com/printhaus/shopapi/internal/repository/redisx"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting shop API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Initialize database
	db, err := mongodb.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		cancelIndex()
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}
	cancelIndex()

	// Initialize repositories; carts live in Redis
	repos := mongodb.NewRepositories(db, logger)
	rdb := redisx.New(cfg.Redis.Addr)
	defer rdb.Close()
	repos.Cart = redisx.NewCartRepository(rdb, cfg.Redis.CartTTL, logger)

	uploader := cloudinary.NewClient(cfg.Cloudinary, logger)
	mailer := mail.NewMailer(cfg.SMTP, logger)

	// Initialize router
	router := api.NewRouter(cfg, repos, uploader, mailer, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
