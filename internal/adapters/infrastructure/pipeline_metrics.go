package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusPipelineMetrics implements the PipelineMetrics port with Prometheus collectors
type PrometheusPipelineMetrics struct {
	registry      *prometheus.Registry
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
	steps         *prometheus.CounterVec
	stepDuration  *prometheus.HistogramVec
	fetchAttempts *prometheus.CounterVec
	rowsInserted  prometheus.Counter
	rowsPruned    prometheus.Counter
}

// NewPrometheusPipelineMetrics registers the pipeline collectors on a fresh registry
func NewPrometheusPipelineMetrics() *PrometheusPipelineMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusPipelineMetrics{
		registry: registry,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherstack_pipeline_runs_total",
				Help: "The total number of pipeline runs by outcome",
			},
			[]string{"outcome"},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "weatherstack_pipeline_run_duration_seconds",
				Help:    "Pipeline run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		steps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherstack_pipeline_step_runs_total",
				Help: "The total number of step executions by step and outcome",
			},
			[]string{"step", "outcome"},
		),
		stepDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherstack_pipeline_step_duration_seconds",
				Help:    "Step duration in seconds, including retries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"step"},
		),
		fetchAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherstack_fetch_attempts_total",
				Help: "The total number of weatherstack requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		rowsInserted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "weatherstack_rows_inserted_total",
				Help: "The total number of observation rows inserted",
			},
		),
		rowsPruned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "weatherstack_rows_pruned_total",
				Help: "The total number of observation rows removed by retention",
			},
		),
	}
}

// Registry exposes the registry for the /metrics handler
func (m *PrometheusPipelineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusPipelineMetrics) RecordRun(outcome string, duration time.Duration) {
	m.runs.WithLabelValues(outcome).Inc()
	m.runDuration.Observe(duration.Seconds())
}

func (m *PrometheusPipelineMetrics) RecordStep(step, outcome string, duration time.Duration) {
	m.steps.WithLabelValues(step, outcome).Inc()
	m.stepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

func (m *PrometheusPipelineMetrics) RecordFetchAttempt(endpoint, outcome string) {
	m.fetchAttempts.WithLabelValues(endpoint, outcome).Inc()
}

func (m *PrometheusPipelineMetrics) RecordRowsInserted(count int) {
	if count > 0 {
		m.rowsInserted.Add(float64(count))
	}
}

func (m *PrometheusPipelineMetrics) RecordRowsPruned(count int64) {
	if count > 0 {
		m.rowsPruned.Add(float64(count))
	}
}
