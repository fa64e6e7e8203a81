package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/internal/bootstrap"
	"worker_server/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	shutdownTimeout = 30 * time.Second // Maximum time to wait for graceful shutdown
)

func main() {
	// Initialize logger early
	logger.Init(logger.Config{
		Level:   logger.LevelInfo,
		Service: "triage-agent",
	})

	// Load .env file if exists (for local development)
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	mode := flag.String("mode", "all", "Run mode: api, worker, triage, all")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}

	switch *mode {
	case "api":
		runAPI(cfg)
	case "worker":
		runScheduler(cfg)
	case "triage":
		runTriageOnce(cfg)
	case "all":
		go runScheduler(cfg)
		runAPI(cfg)
	default:
		logger.Fatal("Unknown mode: %s", *mode)
	}
}

func runAPI(cfg *config.Config) {
	app, cleanup, err := bootstrap.NewAPI(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize API: %v", err)
	}
	defer cleanup()

	// Graceful shutdown with timeout
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down trigger API (timeout: %v)...", shutdownTimeout)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- app.Shutdown()
		}()

		select {
		case err := <-done:
			if err != nil {
				logger.Error("Error shutting down: %v", err)
			} else {
				logger.Info("Trigger API shut down gracefully")
			}
		case <-ctx.Done():
			logger.Warn("API shutdown timed out, forcing exit")
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("Starting trigger API on %s", addr)
	if err := app.Listen(addr); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}

func runScheduler(cfg *config.Config) {
	p, cleanup, err := bootstrap.NewTriage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize triage pipeline: %v", err)
	}
	defer cleanup()

	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	sched, err := bootstrap.NewScheduler(cfg, p, zlog)
	if err != nil {
		logger.Fatal("Failed to initialize scheduler: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sched.Start()
	logger.Info("Scheduler running on %q", cfg.ScheduleCron)
	<-sigChan

	logger.Info("Shutting down scheduler (timeout: %v)...", shutdownTimeout)
	done := make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Scheduler shut down gracefully")
	case <-time.After(shutdownTimeout):
		logger.Warn("Scheduler shutdown timed out, forcing exit")
		os.Exit(1)
	}
}

func runTriageOnce(cfg *config.Config) {
	p, cleanup, err := bootstrap.NewTriage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize triage pipeline: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.BatchDeadline())
	defer cancel()

	result, err := p.Run(ctx, "manual triage run", domain.DefaultUserScope())
	if err != nil {
		logger.Fatal("Triage batch failed: %v", err)
	}
	fmt.Printf("batch %s: processed=%d drafts=%d\n", result.BatchID, result.BatchInfo.TotalProcessed, result.Summary.DraftsCreated)
}
