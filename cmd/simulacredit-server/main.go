package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vilduis/SimulaCredit-sub000/internal/repository"
	"github.com/Vilduis/SimulaCredit-sub000/internal/server"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Optional .env for local development; env vars win either way.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := os.Getenv("SIMULACREDIT_ADDR")
	if address == "" {
		address = constants.DefaultServerAddress
	}

	var cache *repository.SimulationCache
	if redisAddr := os.Getenv("SIMULACREDIT_REDIS_ADDR"); redisAddr != "" {
		cache = repository.NewSimulationCache(repository.NewRedisCache(redisAddr, time.Hour))
		logger.Info("simulation cache backed by redis",
			zap.String("op", "main"),
			zap.String("addr", redisAddr),
		)
	} else {
		cache = repository.NewSimulationCache(repository.NewMemoryCache())
	}

	handler := server.NewHandler(logger, cache, constants.DefaultMaxBodySizeBytes, version)

	srv := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("simulation API listening",
			zap.String("op", "main"),
			zap.String("addr", address),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case <-quit:
		logger.Info("shutting down",
			zap.String("op", "main"),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
