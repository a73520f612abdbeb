package infrastructure

import (
	"context"

	"weatherstack.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is anything that can prove a live connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	pinger Pinger
	driver string
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(pinger Pinger, driver string) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{pinger: pinger, driver: driver}
}

// Check verifies database connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   map[string]interface{}{"driver": d.driver},
	}

	if d.pinger == nil {
		status.Status = statusUnhealthy
		status.Error = "database connector is nil"
		return status
	}

	if err := d.pinger.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true
	return status
}

// RunLockHealthChecker reports the run lock backend and, when it can, pings it
type RunLockHealthChecker struct {
	lock ports.RunLock
}

// NewRunLockHealthChecker creates a new run lock health checker
func NewRunLockHealthChecker(lock ports.RunLock) *RunLockHealthChecker {
	return &RunLockHealthChecker{lock: lock}
}

// Check verifies the run lock backend
func (r *RunLockHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "runLock",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if r.lock == nil {
		status.Status = statusUnhealthy
		status.Error = "run lock is not configured"
		return status
	}

	status.Details["backend"] = r.lock.Backend()
	if pinger, ok := r.lock.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
		}
	}

	return status
}

// WeatherstackHealthChecker reports the fetcher configuration without calling the API
type WeatherstackHealthChecker struct {
	config ports.WeatherstackConfig
}

// NewWeatherstackHealthChecker creates a new weatherstack health checker
func NewWeatherstackHealthChecker(config ports.WeatherstackConfig) *WeatherstackHealthChecker {
	return &WeatherstackHealthChecker{config: config}
}

// Check verifies the weatherstack configuration is usable
func (w *WeatherstackHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherstack",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"endpoints":     w.config.BaseURLs,
			"query":         w.config.Query,
			"units":         w.config.Units,
			"apiKeyPresent": w.config.APIKey != "",
		},
	}

	switch {
	case w.config.APIKey == "":
		status.Status = statusUnhealthy
		status.Error = "api key is not configured"
	case len(w.config.BaseURLs) == 0:
		status.Status = statusUnhealthy
		status.Error = "no weatherstack endpoints configured"
	}

	return status
}
