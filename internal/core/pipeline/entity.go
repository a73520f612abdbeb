package pipeline

import (
	"context"
	"fmt"
	"time"
)

// Step names as they appear in logs, metrics and run reports
const (
	StepEnsureTable    = "ensure_table"
	StepExtractAndLoad = "extract_and_load"
	StepCleanupOldRows = "cleanup_old_rows"
)

// Step is one named unit of work; it must be safe to retry.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// RetryPolicy controls how often a failed step is re-run before the run fails
type RetryPolicy struct {
	Retries int
	Delay   time.Duration
}

// Attempts returns the total number of times a step may run
func (p RetryPolicy) Attempts() int {
	if p.Retries < 0 {
		return 1
	}
	return p.Retries + 1
}

type StepResult struct {
	Name     string
	Attempts int
	Duration time.Duration
	Err      error
}

// RunReport summarizes one pipeline run
type RunReport struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Skipped   bool
	Steps     []StepResult
	Err       error
}

// Succeeded reports whether every step ran to completion
func (r *RunReport) Succeeded() bool {
	return !r.Skipped && r.Err == nil
}

// StepError is returned when a step keeps failing after all attempts
type StepError struct {
	Step     string
	Attempts int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed after %d attempt(s): %v", e.Step, e.Attempts, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
