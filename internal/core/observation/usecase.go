package observation

import (
	"context"
	"fmt"

	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

const maxRecentLimit = 500

type UseCase struct {
	fetcher    ports.WeatherFetcher
	repository ports.ObservationRepository
	logger     ports.Logger
	metrics    ports.PipelineMetrics
}

type UseCaseDependencies struct {
	Fetcher    ports.WeatherFetcher
	Repository ports.ObservationRepository
	Logger     ports.Logger
	Metrics    ports.PipelineMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Repository == nil {
		return nil, errors.NewValidationError("observation repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		fetcher:    deps.Fetcher,
		repository: deps.Repository,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}, nil
}

// EnsureSchema creates weather_current and its fetched_at index when absent
func (uc *UseCase) EnsureSchema(ctx context.Context) error {
	if err := uc.repository.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	uc.logger.Debug("Schema is in place")
	return nil
}

// FetchWeather returns a payload that carries a current section
func (uc *UseCase) FetchWeather(ctx context.Context, params FetchParams) (*ports.WeatherPayload, error) {
	if err := params.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid fetch request: " + err.Error())
	}
	params.Normalize()

	payload, err := uc.fetcher.FetchCurrent(ctx, ports.FetchRequest{
		Query:  params.Query,
		APIKey: params.APIKey,
		Units:  params.Units,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch weather for %s: %w", params.Query, err)
	}
	return payload, nil
}

// Load maps payload into one row and inserts it
func (uc *UseCase) Load(ctx context.Context, payload *ports.WeatherPayload) (*Observation, error) {
	obs, err := NewObservationFromPayload(payload)
	if err != nil {
		return nil, err
	}

	id, err := uc.repository.Insert(ctx, obs.ToData())
	if err != nil {
		return nil, fmt.Errorf("insert observation: %w", err)
	}
	obs.ID = id
	uc.metrics.RecordRowsInserted(1)

	uc.logger.Info("Observation stored",
		ports.F("id", id),
		ports.F("observation", obs.String()))
	return obs, nil
}

// ExtractAndLoad fetches the current conditions and stores them as one row
func (uc *UseCase) ExtractAndLoad(ctx context.Context, params FetchParams) (*Observation, error) {
	payload, err := uc.FetchWeather(ctx, params)
	if err != nil {
		return nil, err
	}
	return uc.Load(ctx, payload)
}

// Prune deletes rows older than retentionDays by the database clock
func (uc *UseCase) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays < 1 {
		return 0, errors.NewValidationError("retention days must be positive")
	}

	deleted, err := uc.repository.DeleteOlderThan(ctx, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("prune observations: %w", err)
	}
	uc.metrics.RecordRowsPruned(deleted)

	uc.logger.Info("Old observations pruned",
		ports.F("retention_days", retentionDays),
		ports.F("deleted", deleted))
	return deleted, nil
}

// Recent returns the newest observations first
func (uc *UseCase) Recent(ctx context.Context, limit int) ([]*Observation, error) {
	if limit < 1 || limit > maxRecentLimit {
		return nil, errors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", maxRecentLimit))
	}

	rows, err := uc.repository.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("find recent observations: %w", err)
	}

	result := make([]*Observation, 0, len(rows))
	for _, row := range rows {
		result = append(result, FromData(row))
	}
	return result, nil
}
