package metrics

import (
	"testing"

	"priority-scheduler/internal/responses"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorObserve(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := NewCollector(registry)
	require.NoError(t, err)

	c.Observe(responses.ScheduleResponse{Details: []responses.ProcessResponse{
		{ProcessId: 1, TurnAroundTime: 8},
		{ProcessId: 2, TurnAroundTime: 2},
	}})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.passes))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.processes))
	assert.Equal(t, 1, testutil.CollectAndCount(c.turnaround))
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewCollector(registry)
	require.NoError(t, err)

	_, err = NewCollector(registry)
	assert.Error(t, err)
}
