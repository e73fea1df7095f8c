package schedulers

import (
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"

	"github.com/rs/zerolog/log"
)

// SchedulePriority runs the non-preemptive priority algorithm over the jobs of
// one request and builds the analytics for it.
func SchedulePriority(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Debug().Int("jobs", len(request.Jobs)).Msg("running non-preemptive priority algorithm")

	scheduler := NewPriorityScheduler()
	for _, process := range request.Processes() {
		scheduler.Insert(process)
	}
	scheduler.Schedule()

	response, err := GenerateResponse(scheduler)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Debug().Int("total_time", response.TotalTime).Msg("priority schedule complete")
	return response, nil
}
