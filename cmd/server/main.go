package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riteshkumar/networth-tracker/internal/app"
	"github.com/riteshkumar/networth-tracker/internal/config"
	"github.com/riteshkumar/networth-tracker/internal/handler"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	// Initialise logger
	logger := config.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	// Connect to the store and load persisted state
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.Open(startCtx, cfg, logger)
	cancelStart()
	if err != nil {
		logger.Error("failed to start", "error", err.Error())
		os.Exit(1)
	}

	router := handler.NewRouter(application.Service, application.Metrics, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a go routine
	go func() {
		logger.Info("starting server on port " + cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err.Error())
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err.Error())
	}

	// no more actions can arrive; flush what is queued
	if err := application.Close(ctx); err != nil {
		logger.Error("failed to flush state", "error", err.Error())
	}

	logger.Info("server exited gracefully")
}
