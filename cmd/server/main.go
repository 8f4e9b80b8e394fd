package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arim/yt-utility-go/internal/app"
	"github.com/arim/yt-utility-go/internal/config"
	"github.com/arim/yt-utility-go/internal/util"
	"github.com/arim/yt-utility-go/internal/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	zapLogger.Info("YouTube utility tool starting...",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("debug_mode", cfg.Server.DebugMode),
		zap.String("log_level", cfg.Logging.Level),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, zapLogger)
	buildCancel()
	if err != nil {
		zapLogger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	fiberApp := fiber.New(fiber.Config{
		AppName:               "YouTube Utility Tool",
		DisableStartupMessage: true,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(web.RateLimit(cfg.RateLimit))

	web.Register(fiberApp, container.Handlers)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		zapLogger.Error("Server error", zap.Error(err))
	}

	zapLogger.Info("Shutting down gracefully...")
	if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
		zapLogger.Error("Error during shutdown", zap.Error(err))
	}

	zapLogger.Info("Shutdown complete")
}
