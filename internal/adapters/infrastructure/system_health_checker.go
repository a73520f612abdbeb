package infrastructure

import (
	"context"

	"weatherstack.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker     ports.HealthChecker
	runLockChecker      ports.HealthChecker
	weatherstackChecker ports.HealthChecker
	configProvider      ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker     ports.HealthChecker
	RunLockChecker      ports.HealthChecker
	WeatherstackChecker ports.HealthChecker
	ConfigProvider      ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker:     config.DatabaseChecker,
		runLockChecker:      config.RunLockChecker,
		weatherstackChecker: config.WeatherstackChecker,
		configProvider:      config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.databaseChecker != nil {
		results["database"] = s.databaseChecker.Check(ctx)
	}

	if s.runLockChecker != nil {
		results["runLock"] = s.runLockChecker.Check(ctx)
	}

	if s.weatherstackChecker != nil {
		results["weatherstack"] = s.weatherstackChecker.Check(ctx)
	}

	if s.configProvider != nil {
		pipelineConfig := s.configProvider.GetPipelineConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"mode":           pipelineConfig.Mode,
				"schedule":       pipelineConfig.Schedule,
				"retentionDays":  pipelineConfig.RetentionDays,
				"databaseDriver": s.configProvider.GetDatabaseConfig().Driver,
			},
		}
	}

	return results
}

// IsHealthy reports whether every component is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}
