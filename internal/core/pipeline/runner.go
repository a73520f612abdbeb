package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

// Runner executes steps in order, short-circuiting on the first step that
// exhausts its retries. At most one run per name is active when a lock is set.
type Runner struct {
	name    string
	steps   []Step
	retry   RetryPolicy
	lock    ports.RunLock
	lockTTL time.Duration
	metrics ports.PipelineMetrics
	logger  ports.Logger

	sleep    func(ctx context.Context, d time.Duration) error
	newRunID func() string
	now      func() time.Time
}

// RunnerParams holds parameters for creating a runner
type RunnerParams struct {
	Name    string
	Steps   []Step
	Retry   RetryPolicy
	Lock    ports.RunLock
	LockTTL time.Duration
	Metrics ports.PipelineMetrics
	Logger  ports.Logger
}

func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Name == "" {
		return nil, errors.NewValidationError("pipeline name is required")
	}
	if len(params.Steps) == 0 {
		return nil, errors.NewValidationError("at least one step is required")
	}
	for _, step := range params.Steps {
		if step.Name == "" || step.Run == nil {
			return nil, errors.NewValidationError("every step needs a name and a run function")
		}
	}
	if params.Lock != nil && params.LockTTL <= 0 {
		return nil, errors.NewValidationError("lock ttl must be positive when a lock is configured")
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Runner{
		name:     params.Name,
		steps:    params.Steps,
		retry:    params.Retry,
		lock:     params.Lock,
		lockTTL:  params.LockTTL,
		metrics:  params.Metrics,
		logger:   params.Logger,
		sleep:    sleepContext,
		newRunID: uuid.NewString,
		now:      time.Now,
	}, nil
}

// Run executes one pipeline run. A run skipped because another holder owns
// the lock returns a report with Skipped set and no error.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{
		RunID:     r.newRunID(),
		StartedAt: r.now(),
	}
	logFields := []ports.Field{ports.F("pipeline", r.name), ports.F("run_id", report.RunID)}

	if r.lock != nil {
		token, acquired, err := r.lock.TryLock(ctx, r.name, r.lockTTL)
		if err != nil {
			report.Err = fmt.Errorf("acquire run lock: %w", err)
			r.finish(report, logFields)
			return report, report.Err
		}
		if !acquired {
			report.Skipped = true
			r.finish(report, logFields)
			return report, nil
		}
		defer func() {
			if unlockErr := r.lock.Unlock(context.WithoutCancel(ctx), r.name, token); unlockErr != nil {
				r.logger.Warn("Failed to release run lock", append(logFields, ports.F("error", unlockErr))...)
			}
		}()
	}

	r.logger.Info("Pipeline run started", logFields...)

	for _, step := range r.steps {
		result := r.runStep(ctx, step, logFields)
		report.Steps = append(report.Steps, result)
		if result.Err != nil {
			report.Err = &StepError{Step: step.Name, Attempts: result.Attempts, Err: result.Err}
			break
		}
	}

	r.finish(report, logFields)
	return report, report.Err
}

func (r *Runner) runStep(ctx context.Context, step Step, logFields []ports.Field) StepResult {
	result := StepResult{Name: step.Name}
	started := r.now()
	fields := append(append([]ports.Field{}, logFields...), ports.F("step", step.Name))

	maxAttempts := r.retry.Attempts()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt
		result.Err = step.Run(ctx)
		if result.Err == nil {
			break
		}

		r.logger.Warn("Step attempt failed",
			append(fields, ports.F("attempt", attempt), ports.F("error", result.Err.Error()))...)

		if attempt == maxAttempts || ctx.Err() != nil {
			break
		}
		if err := r.sleep(ctx, r.retry.Delay); err != nil {
			break
		}
	}

	result.Duration = r.now().Sub(started)
	outcome := ports.OutcomeSuccess
	if result.Err != nil {
		outcome = ports.OutcomeFailure
		r.logger.Error("Step failed", append(fields, ports.F("attempts", result.Attempts))...)
	} else {
		r.logger.Debug("Step completed", append(fields, ports.F("duration_ms", result.Duration.Milliseconds()))...)
	}
	r.metrics.RecordStep(step.Name, outcome, result.Duration)
	return result
}

func (r *Runner) finish(report *RunReport, logFields []ports.Field) {
	report.Duration = r.now().Sub(report.StartedAt)
	fields := append(logFields, ports.F("duration_ms", report.Duration.Milliseconds()))

	switch {
	case report.Skipped:
		r.metrics.RecordRun(ports.OutcomeSkipped, report.Duration)
		r.logger.Warn("Pipeline run skipped, previous run still active", fields...)
	case report.Err != nil:
		r.metrics.RecordRun(ports.OutcomeFailure, report.Duration)
		r.logger.Error("Pipeline run failed", append(fields, ports.F("error", report.Err.Error()))...)
	default:
		r.metrics.RecordRun(ports.OutcomeSuccess, report.Duration)
		r.logger.Info("Pipeline run completed", fields...)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsStepError reports whether err came from a step that exhausted its attempts
func IsStepError(err error) bool {
	var stepErr *StepError
	return stderrors.As(err, &stepErr)
}
