package pipeline

import (
	"context"

	"weatherstack.app/internal/core/observation"
)

// ObservationSteps is the slice of the observation use case the pipeline drives
type ObservationSteps interface {
	EnsureSchema(ctx context.Context) error
	ExtractAndLoad(ctx context.Context, params observation.FetchParams) (*observation.Observation, error)
	Prune(ctx context.Context, retentionDays int) (int64, error)
}

// WeatherstackStepsParams holds parameters for building the weatherstack steps
type WeatherstackStepsParams struct {
	UseCase       ObservationSteps
	Fetch         observation.FetchParams
	RetentionDays int
}

// WeatherstackSteps returns ensure_table, extract_and_load and cleanup_old_rows in run order
func WeatherstackSteps(params WeatherstackStepsParams) []Step {
	uc := params.UseCase
	return []Step{
		{
			Name: StepEnsureTable,
			Run:  uc.EnsureSchema,
		},
		{
			Name: StepExtractAndLoad,
			Run: func(ctx context.Context) error {
				_, err := uc.ExtractAndLoad(ctx, params.Fetch)
				return err
			},
		},
		{
			Name: StepCleanupOldRows,
			Run: func(ctx context.Context) error {
				_, err := uc.Prune(ctx, params.RetentionDays)
				return err
			},
		},
	}
}
