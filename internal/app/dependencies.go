package app

import (
	"fmt"
	"io"

	"weatherstack.app/internal/adapters/database"
	"weatherstack.app/internal/adapters/external"
	"weatherstack.app/internal/adapters/infrastructure"
	"weatherstack.app/internal/config"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/logger"
)

// DependencyContainer wires adapters to ports for one process
type DependencyContainer struct {
	config    *config.Config
	connector *database.Connector
	metrics   *infrastructure.PrometheusPipelineMetrics
	ports     *ports.ApplicationPorts
	closers   []io.Closer
}

// NewDependencyContainer builds every adapter from configuration. Only the
// Redis lock touches the network here; database connections open per operation.
func NewDependencyContainer(cfg *config.Config, log ports.Logger) (*DependencyContainer, error) {
	if log == nil {
		var err error
		log, err = NewLogger(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	c := &DependencyContainer{config: cfg}
	if err := c.initializePorts(log); err != nil {
		if closeErr := c.Cleanup(); closeErr != nil {
			log.Warn("Failed to release partially built dependencies", ports.F("error", closeErr))
		}
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return c, nil
}

// NewLogger builds the slog-backed port logger, fanning out to a JSON file when configured
func NewLogger(cfg config.LoggingConfig) (ports.Logger, error) {
	slogger := infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(logger.ParseLevel(cfg.Level)).Logger)
	if cfg.FilePath == "" {
		return slogger, nil
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(infrastructure.FileLoggerParams{
		Path:     cfg.FilePath,
		MinLevel: fileLevel(cfg.Level),
	})
	if err != nil {
		return nil, err
	}
	return infrastructure.NewMultiLogger(slogger, fileLogger), nil
}

// fileLevel maps LOG_LEVEL onto the file logger's level names
func fileLevel(level string) string {
	return logger.ParseLevel(level).String()
}

func (c *DependencyContainer) initializePorts(log ports.Logger) error {
	log.Info("Initializing ports",
		ports.F("db_driver", c.config.Database.Driver.String()),
		ports.F("lock_type", c.config.Lock.Type.String()))

	connector, err := database.NewConnector(c.config.Database, log)
	if err != nil {
		return fmt.Errorf("create database connector: %w", err)
	}
	c.connector = connector
	repository := database.NewObservationRepositoryAdapter(connector)

	c.metrics = infrastructure.NewPrometheusPipelineMetrics()

	provider, err := external.NewWeatherstackProviderAdapter(external.WeatherstackProviderParams{
		BaseURLs: c.config.Weatherstack.BaseURLs,
		Timeout:  c.config.Weatherstack.Timeout,
		Metrics:  c.metrics,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("create weatherstack provider: %w", err)
	}

	var fetcher ports.WeatherFetcher = provider
	if c.config.Weatherstack.LogCalls {
		fetcher = external.NewWeatherFetcherLoggingDecorator(provider, log)
	}

	runLock, err := external.NewRunLockFactory().CreateRunLock(&c.config.Lock)
	if err != nil {
		return fmt.Errorf("create run lock: %w", err)
	}
	if closer, ok := runLock.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:     infrastructure.NewDatabaseHealthChecker(connector, connector.Driver()),
		RunLockChecker:      infrastructure.NewRunLockHealthChecker(runLock),
		WeatherstackChecker: infrastructure.NewWeatherstackHealthChecker(configProvider.GetWeatherstackConfig()),
		ConfigProvider:      configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		WeatherFetcher:        fetcher,
		ObservationRepository: repository,
		RunLock:               runLock,
		PipelineMetrics:       c.metrics,
		ConfigProvider:        configProvider,
		HealthChecker:         healthChecker,
		Logger:                log,
	}
	return nil
}

// ApplicationPorts returns the wired ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus-backed pipeline metrics
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusPipelineMetrics {
	return c.metrics
}

// Cleanup releases long-lived clients
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
