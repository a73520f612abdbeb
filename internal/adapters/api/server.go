// Package api provides the HTTP adapter that exposes health, metrics and
// recently stored observations while the pipeline runs on its schedule.
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherstack.app/internal/core/observation"
	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// ObservationQuery is the read side of the observation use case
type ObservationQuery interface {
	Recent(ctx context.Context, limit int) ([]*observation.Observation, error)
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	observations  ObservationQuery
	healthChecker ports.SystemHealthChecker
	gatherer      prometheus.Gatherer
	logger        ports.Logger

	mu         sync.Mutex
	httpServer *http.Server
	stopped    bool
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	Observations  ObservationQuery
	HealthChecker ports.SystemHealthChecker
	Gatherer      prometheus.Gatherer
	Logger        ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		observations:  opts.Observations,
		healthChecker: opts.HealthChecker,
		gatherer:      opts.Gatherer,
		logger:        opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Observations == nil {
		return errors.NewValidationError("observation query is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Gatherer == nil {
		return errors.NewValidationError("metrics gatherer is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	if opts.Config.Port < 1 || opts.Config.Port > 65535 {
		return errors.NewValidationError("server port must be between 1 and 65535")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/observations", s.listObservations)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// Start serves until Shutdown is called; a clean shutdown returns nil
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}
	s.httpServer = httpServer
	s.mu.Unlock()

	s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
	if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.NewConfigurationError("http server stopped", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer == nil {
		return nil
	}
	s.logger.Info("Stopping HTTP server")
	return httpServer.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
