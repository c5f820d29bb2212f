package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/restopos/pos-e2e/config"
	"github.com/restopos/pos-e2e/internal/app"
	"github.com/restopos/pos-e2e/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.InitializeAndConfigure()
	logger.SetLevel(cfg.LogLevel)

	a, err := app.New(app.Options{
		DSN:       cfg.DatabaseDSN,
		JWTSecret: cfg.JWTSecret,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})
	if err != nil {
		logger.Fatalf("failed to build the API: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down")
		if err := a.Close(); err != nil {
			logger.Errorf("shutdown: %v", err)
		}
	}()

	logger.Infof("POS stand-in API listening on :%s", cfg.Port)
	if err := a.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
