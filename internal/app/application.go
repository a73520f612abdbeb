package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"weatherstack.app/internal/adapters/api"
	"weatherstack.app/internal/config"
	"weatherstack.app/internal/core/observation"
	"weatherstack.app/internal/core/pipeline"
	"weatherstack.app/internal/ports"
)

const pipelineName = "weatherstack_to_postgres"

type Application struct {
	config *config.Config

	// Use Cases
	observationUseCase *observation.UseCase
	runner             *pipeline.Runner

	// Adapters
	server    *api.HTTPServerAdapter
	scheduler *Scheduler

	// Infrastructure
	ports     *ports.ApplicationPorts
	gatherer  prometheus.Gatherer
	container *DependencyContainer
	logger    ports.Logger

	mu         sync.Mutex
	lastReport *pipeline.RunReport
}

// NewApplication wires the production adapters for cfg
func NewApplication(cfg *config.Config, logger ports.Logger) (*Application, error) {
	container, err := NewDependencyContainer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithPorts(cfg, container.ApplicationPorts(), container.Metrics().Registry())
	if err != nil {
		if cleanupErr := container.Cleanup(); cleanupErr != nil {
			container.ApplicationPorts().Logger.Warn("Cleanup failed", ports.F("error", cleanupErr))
		}
		return nil, err
	}
	app.container = container
	return app, nil
}

// NewApplicationWithPorts creates an application with provided ports (for testing)
func NewApplicationWithPorts(cfg *config.Config, appPorts *ports.ApplicationPorts, gatherer prometheus.Gatherer) (*Application, error) {
	app := &Application{
		config:   cfg,
		ports:    appPorts,
		gatherer: gatherer,
		logger:   appPorts.Logger,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	observationUseCase, err := observation.NewUseCase(observation.UseCaseDependencies{
		Fetcher:    a.ports.WeatherFetcher,
		Repository: a.ports.ObservationRepository,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.PipelineMetrics,
	})
	if err != nil {
		return fmt.Errorf("create observation use case: %w", err)
	}
	a.observationUseCase = observationUseCase

	steps := pipeline.WeatherstackSteps(pipeline.WeatherstackStepsParams{
		UseCase: observationUseCase,
		Fetch: observation.FetchParams{
			Query:  a.config.Weatherstack.Query,
			APIKey: a.config.Weatherstack.APIKey,
			Units:  a.config.Weatherstack.Units,
		},
		RetentionDays: a.config.Retention.Days,
	})

	runner, err := pipeline.NewRunner(pipeline.RunnerParams{
		Name:    pipelineName,
		Steps:   steps,
		Retry:   pipeline.RetryPolicy{Retries: a.config.Pipeline.StepRetries, Delay: a.config.Pipeline.RetryDelay},
		Lock:    a.ports.RunLock,
		LockTTL: a.config.Pipeline.LockTTL,
		Metrics: a.ports.PipelineMetrics,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create pipeline runner: %w", err)
	}
	a.runner = runner
	return nil
}

func (a *Application) initializeAdapters() error {
	a.scheduler = NewScheduler(a.logger)

	if !a.config.Server.Enabled {
		return nil
	}

	server, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:        api.ServerConfig{Port: a.config.Server.Port},
		Observations:  a.observationUseCase,
		HealthChecker: a.ports.HealthChecker,
		Gatherer:      a.gatherer,
		Logger:        a.logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.server = server
	return nil
}

// RunOnce executes ensure_table, extract_and_load and cleanup_old_rows once.
// A run skipped because another one holds the lock is not an error.
func (a *Application) RunOnce(ctx context.Context) (*pipeline.RunReport, error) {
	report, err := a.runner.Run(ctx)

	a.mu.Lock()
	a.lastReport = report
	a.mu.Unlock()

	return report, err
}

// Start runs the pipeline on its cron schedule, plus the HTTP server when
// enabled, and blocks until ctx is cancelled or the server fails.
func (a *Application) Start(ctx context.Context) error {
	err := a.scheduler.Schedule(ctx, a.config.Pipeline.Schedule, func(ctx context.Context) {
		if _, err := a.RunOnce(ctx); err != nil {
			a.logger.Error("Scheduled pipeline run failed", ports.F("error", err))
		}
	})
	if err != nil {
		return err
	}

	a.scheduler.Start()
	a.logger.Info("Pipeline scheduled",
		ports.F("schedule", a.config.Pipeline.Schedule),
		ports.F("next_run", a.scheduler.NextRun().Format(time.RFC3339)))

	if a.server == nil {
		<-ctx.Done()
		return nil
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown stops the scheduler, the HTTP server and long-lived clients
func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	a.scheduler.Stop()

	var firstErr error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.Error("Error shutting down HTTP server", ports.F("error", err))
			firstErr = fmt.Errorf("shutdown HTTP server: %w", err)
		}
	}

	if a.container != nil {
		if err := a.container.Cleanup(); err != nil {
			a.logger.Warn("Error releasing dependencies", ports.F("error", err))
			if firstErr == nil {
				firstErr = fmt.Errorf("release dependencies: %w", err)
			}
		}
	}

	a.logger.Info("Application shutdown complete")
	return firstErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// LastReport returns the report of the most recent run, nil before the first
func (a *Application) LastReport() *pipeline.RunReport {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastReport
}

// Server returns the HTTP adapter, nil when the server is disabled
func (a *Application) Server() *api.HTTPServerAdapter {
	return a.server
}
