package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/core/pipeline"
	"worker_server/internal/bootstrap"
)

var (
	flagQuery         string
	flagMaxResults    int
	flagTimeRangeDays int
	flagJSON          bool
	flagAutoApprove   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one triage batch against the configured mailbox",
	RunE:  runTriage,
}

func init() {
	runCmd.Flags().StringVar(&flagQuery, "query", "", "mailbox search query (provider-specific syntax)")
	runCmd.Flags().IntVar(&flagMaxResults, "max-results", 50, "maximum messages to fetch")
	runCmd.Flags().IntVar(&flagTimeRangeDays, "time-range-days", 7, "only consider messages newer than this many days")
	runCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON instead of a table")
	runCmd.Flags().BoolVar(&flagAutoApprove, "auto-approve", false, "skip the interactive approval gate (CI/unattended use)")
}

func runTriage(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "triagectl",
	})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	p, cleanup, err := bootstrap.NewTriage(cfg)
	defer cleanup()
	if err != nil {
		return fmt.Errorf("initialize triage pipeline: %w", err)
	}

	scope := domain.DefaultUserScope()
	if flagQuery != "" {
		scope.Query = flagQuery
	}
	if flagMaxResults > 0 {
		scope.MaxResults = flagMaxResults
	}
	if flagTimeRangeDays > 0 {
		scope.TimeRangeDays = flagTimeRangeDays
	}

	logger.Info("starting triage batch", "query", scope.Query, "max_results", scope.MaxResults, "time_range_days", scope.TimeRangeDays)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.BatchDeadline()+10*time.Second)
	defer cancel()

	result, err := p.Run(ctx, fmt.Sprintf("triagectl run %s", time.Now().Format(time.RFC3339)), scope)
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	if flagJSON {
		out, err := result.ToJSON()
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printSummary(logger, result)

	if !flagAutoApprove {
		if err := approveQueue(ctx, p, logger, result); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(logger *charmlog.Logger, result *pipeline.Result) {
	logger.Info("batch complete",
		"batch_id", result.BatchID,
		"processed", result.BatchInfo.TotalProcessed,
		"drafts", result.Summary.DraftsCreated,
		"blocked", result.Summary.Blocked,
	)
	for _, item := range result.Top10 {
		fmt.Printf("[%s] %-8s %-40s  %s\n", item.Priority.Level, item.Status, truncate(item.Subject, 40), item.Sender)
	}
	for _, c := range result.Clarifications {
		logger.Warn("clarification needed", "message_id", c.MessageID, "reason", c.Reason)
	}
}

// approveQueue walks every item awaiting approval and asks a human before
// sending, per spec.md §4.7's requires_approval gate.
func approveQueue(ctx context.Context, p *pipeline.Pipeline, logger *charmlog.Logger, result *pipeline.Result) error {
	for _, item := range result.Items {
		if item.Status != domain.StatusApprovalRequired || item.DraftID == "" {
			continue
		}

		approve := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Send draft reply to %q?", item.Subject)).
			Description(fmt.Sprintf("sender=%s priority=%s category=%s", item.Sender, item.Priority.Level, item.Category)).
			Value(&approve).
			Run()
		if err != nil {
			return fmt.Errorf("approval prompt: %w", err)
		}
		if !approve {
			continue
		}
		if err := p.Approve(ctx, item.DraftID); err != nil {
			logger.Error("send failed", "message_id", item.MessageID, "err", err)
			continue
		}
		logger.Info("sent", "message_id", item.MessageID)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
