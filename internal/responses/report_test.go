package responses

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	response := ScheduleResponse{
		AverageTurnAroundTime: 22.0 / 3.0,
		AverageWaitingTime:    8.0 / 3.0,
		AverageResponseTime:   8.0 / 3.0,
		Details: []ProcessResponse{
			{ProcessId: 1, TurnAroundTime: 8, WaitingTime: 3, ResponseTime: 3},
			{ProcessId: 2, TurnAroundTime: 2, WaitingTime: -1, ResponseTime: -1},
			{ProcessId: 3, TurnAroundTime: 12, WaitingTime: 6, ResponseTime: 6},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, response))

	want := "Process\tTurnaround Time\tWaiting Time\tResponse Time\n" +
		"1\t\t8\t\t\t3\t\t\t3\n" +
		"2\t\t2\t\t\t-1\t\t\t-1\n" +
		"3\t\t12\t\t\t6\t\t\t6\n" +
		"\n" +
		"Average Turnaround Time: 7.33\n" +
		"Average Waiting Time: 2.67\n" +
		"Average Response Time: 2.67\n"
	assert.Equal(t, want, buf.String())
}
