package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/ckd-predictor/api-service/internal/adapter/http/router"
	"github.com/ckd-predictor/api-service/internal/adapter/model"
	"github.com/ckd-predictor/api-service/internal/infrastructure/config"
	"github.com/ckd-predictor/api-service/internal/infrastructure/logger"
	"github.com/ckd-predictor/api-service/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Match GOMAXPROCS to the container CPU quota
	undo, err := maxprocs.Set(maxprocs.Logger(log.Sugar().Infof))
	defer undo()
	if err != nil {
		log.Warn("Failed to set GOMAXPROCS", zap.Error(err))
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load the model once; it is shared read-only by every request
	classifier, err := model.Load(cfg.Model.Path)
	if err != nil {
		log.Error("Failed to load model", zap.String("path", cfg.Model.Path), zap.Error(err))
		return fmt.Errorf("failed to load model: %w", err)
	}
	info := classifier.Info()
	log.Info("Model loaded",
		zap.String("path", cfg.Model.Path),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.String("kernel", info.Kernel),
	)

	// Setup router
	r := router.Setup(router.Options{
		Classifier:     classifier,
		Logger:         log,
		Registry:       metrics.NewRegistry(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	})

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
