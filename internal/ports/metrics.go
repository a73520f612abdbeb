package ports

import "time"

// Step and run outcomes reported to PipelineMetrics
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// PipelineMetrics defines the contract for pipeline instrumentation
type PipelineMetrics interface {
	RecordRun(outcome string, duration time.Duration)
	RecordStep(step, outcome string, duration time.Duration)
	RecordFetchAttempt(endpoint, outcome string)
	RecordRowsInserted(count int)
	RecordRowsPruned(count int64)
}
