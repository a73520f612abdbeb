package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherstack.app/internal/app"
	"weatherstack.app/internal/config"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	slog.SetDefault(logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).Logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log, err := app.NewLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Failed to initialize application", ports.F("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode := run(ctx, cfg, application, log)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during graceful shutdown", ports.F("error", err))
	}

	os.Exit(exitCode)
}

func run(ctx context.Context, cfg *config.Config, application *app.Application, log ports.Logger) int {
	switch cfg.Pipeline.Mode {
	case config.PipelineModeOnce:
		report, err := application.RunOnce(ctx)
		if err != nil {
			log.Error("Pipeline run failed", ports.F("error", err))
			return 1
		}
		if report.Skipped {
			log.Warn("Pipeline run skipped, another run holds the lock")
		}
		return 0
	default:
		log.Info("Starting weatherstack pipeline",
			ports.F("schedule", cfg.Pipeline.Schedule),
			ports.F("server_enabled", cfg.Server.Enabled))
		if err := application.Start(ctx); err != nil {
			log.Error("Application stopped with error", ports.F("error", err))
			return 1
		}
		return 0
	}
}
