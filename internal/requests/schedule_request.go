package requests

import (
	"priority-scheduler/internal/core"

	"github.com/pkg/errors"
)

var ErrInvalidRequest = errors.New("invalid schedule request")

type Job struct {
	ProcessId   int `json:"process_id" mapstructure:"process_id"`
	ArrivalTime int `json:"arrival_time" mapstructure:"arrival_time"`
	BurstTime   int `json:"burst_time" mapstructure:"burst_time"`
	Priority    int `json:"priority" mapstructure:"priority"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs" mapstructure:"jobs"`
}

// DemoRequest is the sample workload printed when nothing else is configured.
func DemoRequest() ScheduleRequests {
	return ScheduleRequests{Jobs: []Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 6, Priority: 3},
	}}
}

// Validate checks input arriving from outside the process (HTTP, config files).
func (r ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return errors.Wrap(ErrInvalidRequest, "no jobs")
	}
	seen := make(map[int]struct{}, len(r.Jobs))
	for _, job := range r.Jobs {
		if _, ok := seen[job.ProcessId]; ok {
			return errors.Wrapf(ErrInvalidRequest, "duplicate process_id %d", job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return errors.Wrapf(ErrInvalidRequest, "pid %d: negative arrival_time", job.ProcessId)
		}
		if job.BurstTime <= 0 {
			return errors.Wrapf(ErrInvalidRequest, "pid %d: burst_time must be positive", job.ProcessId)
		}
	}
	return nil
}

func (r ScheduleRequests) Processes() []*core.Process {
	processes := make([]*core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}
