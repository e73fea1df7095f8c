package requests

import (
	"testing"

	"priority-scheduler/internal/core"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request ScheduleRequests
		wantErr bool
	}{
		{name: "demo", request: DemoRequest()},
		{name: "no jobs", request: ScheduleRequests{}, wantErr: true},
		{name: "duplicate id", request: ScheduleRequests{Jobs: []Job{
			{ProcessId: 1, BurstTime: 1}, {ProcessId: 1, BurstTime: 2},
		}}, wantErr: true},
		{name: "negative arrival", request: ScheduleRequests{Jobs: []Job{
			{ProcessId: 1, ArrivalTime: -1, BurstTime: 1},
		}}, wantErr: true},
		{name: "zero burst", request: ScheduleRequests{Jobs: []Job{
			{ProcessId: 1, BurstTime: 0},
		}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidRequest))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProcesses(t *testing.T) {
	processes := DemoRequest().Processes()
	require.Len(t, processes, 3)
	assert.Equal(t, 2, processes[1].ID)
	assert.Equal(t, 1, processes[1].ArrivalTime)
	assert.Equal(t, 3, processes[1].BurstTime)
	assert.Equal(t, 1, processes[1].Priority)
	assert.Equal(t, core.Unscheduled, processes[1].StartTime)
	assert.Equal(t, core.Unscheduled, processes[1].CompletionTime)
	assert.False(t, processes[1].Scheduled())
}
