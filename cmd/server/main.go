package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Tyrowin/lobbychat/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional.
	_ = godotenv.Load()

	cfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := server.NewLogger(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := server.NewService(ctx, cfg, logger)
	svc.Start()

	httpServer := server.CreateServer(cfg.Port, svc.Routes())

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.StartServer(httpServer, logger)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		if err != nil {
			_ = svc.Shutdown(shutdownTimeout)
			return fmt.Errorf("http server: %w", err)
		}
	}

	if err := server.ShutdownServer(httpServer, shutdownTimeout, logger); err != nil {
		logger.Error("HTTP shutdown failed", "err", err)
	}
	if err := svc.Shutdown(shutdownTimeout); err != nil {
		logger.Warn("Hub shutdown incomplete", "err", err)
	}
	logger.Info("Program stopped cleanly")
	return nil
}
