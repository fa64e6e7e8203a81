package bootstrap

import (
	"context"
	"fmt"

	cronv3 "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/core/pipeline"
)

// Scheduler runs periodic triage batches on cfg.ScheduleCron. It is the
// single-instance equivalent of CronManager's job registration (no leader
// election: triagectl runs as one process per mailbox, so there is never a
// second replica to coordinate against).
type Scheduler struct {
	cron *cronv3.Cron
	log  zerolog.Logger
}

// NewScheduler registers the recurring triage job but does not start it;
// call Start. Returns an error if cfg.ScheduleCron does not parse.
func NewScheduler(cfg *config.Config, p *pipeline.Pipeline, log zerolog.Logger) (*Scheduler, error) {
	c := cronv3.New(
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger),
			cronv3.Recover(cronv3.DefaultLogger),
		),
	)

	_, err := c.AddFunc(cfg.ScheduleCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.BatchDeadline())
		defer cancel()

		result, err := p.Run(ctx, "scheduled triage batch", domain.DefaultUserScope())
		if err != nil {
			log.Error().Err(err).Msg("scheduled triage batch failed")
			return
		}
		log.Info().
			Str("batch_id", result.BatchID).
			Int("processed", result.BatchInfo.TotalProcessed).
			Int("drafts", result.Summary.DraftsCreated).
			Msg("scheduled triage batch complete")
	})
	if err != nil {
		return nil, fmt.Errorf("registering schedule %q: %w", cfg.ScheduleCron, err)
	}

	return &Scheduler{cron: c, log: log}, nil
}

// Start begins running the scheduled job in the background.
func (s *Scheduler) Start() {
	s.log.Info().Msg("scheduler started")
	s.cron.Start()
}

// Stop waits for any in-flight job to finish and halts the scheduler.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
