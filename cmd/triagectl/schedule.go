package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"worker_server/config"
	"worker_server/internal/bootstrap"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run triage batches on the configured SCHEDULE_CRON until interrupted",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "triagectl",
	})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.SchedulerEnabled {
		return fmt.Errorf("SCHEDULER_ENABLED is false; set it to run this command")
	}

	p, cleanup, err := bootstrap.NewTriage(cfg)
	defer cleanup()
	if err != nil {
		return fmt.Errorf("initialize triage pipeline: %w", err)
	}

	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	sched, err := bootstrap.NewScheduler(cfg, p, zlog)
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	logger.Info("scheduler running", "cron", cfg.ScheduleCron)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	return nil
}
