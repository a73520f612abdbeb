package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherstack.app/internal/ports"
)

func counterValue(t *testing.T, m *PrometheusPipelineMetrics, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := 0
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] == pair.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestPrometheusPipelineMetrics(t *testing.T) {
	m := NewPrometheusPipelineMetrics()

	m.RecordRun(ports.OutcomeSuccess, time.Second)
	m.RecordRun(ports.OutcomeSkipped, 0)
	m.RecordStep("extract_and_load", ports.OutcomeFailure, 2*time.Second)
	m.RecordFetchAttempt("https://api.weatherstack.com", ports.OutcomeFailure)
	m.RecordFetchAttempt("http://api.weatherstack.com", ports.OutcomeSuccess)
	m.RecordRowsInserted(1)
	m.RecordRowsPruned(3)
	m.RecordRowsPruned(0)

	assert.Equal(t, 1.0, counterValue(t, m, "weatherstack_pipeline_runs_total", map[string]string{"outcome": "success"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weatherstack_pipeline_runs_total", map[string]string{"outcome": "skipped"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weatherstack_pipeline_step_runs_total",
		map[string]string{"step": "extract_and_load", "outcome": "failure"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weatherstack_fetch_attempts_total",
		map[string]string{"endpoint": "http://api.weatherstack.com", "outcome": "success"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weatherstack_rows_inserted_total", nil))
	assert.Equal(t, 3.0, counterValue(t, m, "weatherstack_rows_pruned_total", nil))
}

func TestPrometheusPipelineMetrics_IndependentRegistries(t *testing.T) {
	first := NewPrometheusPipelineMetrics()
	second := NewPrometheusPipelineMetrics()

	first.RecordRowsInserted(1)

	assert.Equal(t, 1.0, counterValue(t, first, "weatherstack_rows_inserted_total", nil))
	assert.Equal(t, 0.0, counterValue(t, second, "weatherstack_rows_inserted_total", nil))
}
