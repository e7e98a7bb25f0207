package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"internhub/internal/app"
	"internhub/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	application, cleanup, err := app.Bootstrap(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer cleanup()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()

	logger.Printf("server listening | addr=%s env=%s", addr, cfg.App.Environment)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}
}
