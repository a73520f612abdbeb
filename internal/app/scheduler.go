package app

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

// Scheduler triggers a job on a cron expression. A tick that arrives while
// the previous run is still going is dropped.
type Scheduler struct {
	scheduler *gocron.Scheduler
	logger    ports.Logger
}

// NewScheduler creates a UTC scheduler
func NewScheduler(logger ports.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		logger:    logger,
	}
}

// Schedule registers job under expr. The job receives ctx so shutdown cancels in-flight runs.
func (s *Scheduler) Schedule(ctx context.Context, expr string, job func(ctx context.Context)) error {
	_, err := s.scheduler.Cron(expr).SingletonMode().Do(func() {
		if ctx.Err() != nil {
			return
		}
		job(ctx)
	})
	if err != nil {
		return errors.NewConfigurationError("invalid PIPELINE_SCHEDULE "+expr, err)
	}
	return nil
}

// Start runs the scheduler in the background
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler", ports.F("jobs", len(s.scheduler.Jobs())))
	s.scheduler.StartAsync()
}

// NextRun returns the next planned trigger time, zero when nothing is scheduled
func (s *Scheduler) NextRun() time.Time {
	_, next := s.scheduler.NextRun()
	return next
}

// Stop stops the scheduler and cancels any future jobs
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
		s.logger.Info("Scheduler stopped")
	}
}
