package schedulers

import (
	"priority-scheduler/internal/core"
	"priority-scheduler/internal/responses"
	"priority-scheduler/internal/util"
)

// GenerateResponse collects per-process details in insertion order together
// with the averages and the dispatch timeline.
func GenerateResponse(s *PriorityScheduler) (responses.ScheduleResponse, error) {
	processes := s.Processes()
	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		detail, err := generateProcessDetails(s, process)
		if err != nil {
			return responses.ScheduleResponse{}, err
		}
		details = append(details, detail)
	}

	averageTurnAroundTime, err := s.AverageTurnaroundTime()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	averageWaitingTime, err := s.AverageWaitingTime()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	averageResponseTime, err := s.AverageResponseTime()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return responses.ScheduleResponse{
		TotalTime:             s.CurrentTime(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuThroughput:         util.CalculateThroughput(len(details), s.CurrentTime()),
		Details:               details,
		Timeline:              s.Timeline(),
	}, nil
}

func generateProcessDetails(s *PriorityScheduler, process *core.Process) (responses.ProcessResponse, error) {
	turnAroundTime, err := s.TurnaroundTime(process)
	if err != nil {
		return responses.ProcessResponse{}, err
	}
	waitingTime, err := s.WaitingTime(process)
	if err != nil {
		return responses.ProcessResponse{}, err
	}
	responseTime, err := s.ResponseTime(process)
	if err != nil {
		return responses.ProcessResponse{}, err
	}
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   responseTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    waitingTime,
	}, nil
}
