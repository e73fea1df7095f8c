package schedulers

import (
	"priority-scheduler/internal/core"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PriorityScheduler runs processes to completion in ascending priority order.
// Arrival time is not consulted when picking the next process, so a process can
// be started before it arrives and end up with a negative waiting time.
type PriorityScheduler struct {
	readyQueue  []*core.Process
	history     []*core.Process
	timeline    []core.Slot
	currentTime int
}

func NewPriorityScheduler() *PriorityScheduler {
	return &PriorityScheduler{
		readyQueue: make([]*core.Process, 0),
		history:    make([]*core.Process, 0),
		timeline:   make([]core.Slot, 0),
	}
}

// Insert places the process after every queued process with an equal or
// smaller priority value, so equal priorities keep their insertion order.
func (s *PriorityScheduler) Insert(process *core.Process) {
	i := 0
	for i < len(s.readyQueue) && s.readyQueue[i].Priority <= process.Priority {
		i++
	}
	s.readyQueue = append(s.readyQueue, nil)
	copy(s.readyQueue[i+1:], s.readyQueue[i:])
	s.readyQueue[i] = process

	s.history = append(s.history, process)
}

func (s *PriorityScheduler) RemoveHighestPriority() (*core.Process, error) {
	if len(s.readyQueue) == 0 {
		return nil, ErrEmptyQueue
	}
	process := s.readyQueue[0]
	s.readyQueue[0] = nil
	s.readyQueue = s.readyQueue[1:]
	return process, nil
}

func (s *PriorityScheduler) IsEmpty() bool {
	return len(s.readyQueue) == 0
}

func (s *PriorityScheduler) Len() int {
	return len(s.readyQueue)
}

// Schedule drains the ready queue, running each process without preemption.
func (s *PriorityScheduler) Schedule() {
	for !s.IsEmpty() {
		process, _ := s.RemoveHighestPriority()
		process.Dispatch(s.currentTime)
		s.currentTime += process.BurstTime

		s.timeline = append(s.timeline, core.Slot{
			ProcessID: process.ID,
			Start:     process.StartTime,
			End:       process.CompletionTime,
		})
		log.Debug().
			Int("pid", process.ID).
			Int("priority", process.Priority).
			Int("start", process.StartTime).
			Int("completion", process.CompletionTime).
			Msg("process dispatched")
	}
}

func (s *PriorityScheduler) CurrentTime() int {
	return s.currentTime
}

// Processes returns every inserted process in insertion order. The slice stays
// populated after Schedule drains the ready queue.
func (s *PriorityScheduler) Processes() []*core.Process {
	out := make([]*core.Process, len(s.history))
	copy(out, s.history)
	return out
}

// Timeline returns the dispatch order produced by Schedule.
func (s *PriorityScheduler) Timeline() []core.Slot {
	out := make([]core.Slot, len(s.timeline))
	copy(out, s.timeline)
	return out
}

func (s *PriorityScheduler) TurnaroundTime(process *core.Process) (int, error) {
	if !process.Scheduled() {
		return 0, errors.Wrapf(ErrUnscheduledProcess, "turnaround time of pid %d", process.ID)
	}
	return process.CompletionTime - process.ArrivalTime, nil
}

func (s *PriorityScheduler) WaitingTime(process *core.Process) (int, error) {
	turnaround, err := s.TurnaroundTime(process)
	if err != nil {
		return 0, errors.Wrap(err, "waiting time")
	}
	return turnaround - process.BurstTime, nil
}

func (s *PriorityScheduler) ResponseTime(process *core.Process) (int, error) {
	if !process.Scheduled() {
		return 0, errors.Wrapf(ErrUnscheduledProcess, "response time of pid %d", process.ID)
	}
	return process.StartTime - process.ArrivalTime, nil
}

func (s *PriorityScheduler) AverageTurnaroundTime() (float64, error) {
	return s.average("turnaround", s.TurnaroundTime)
}

func (s *PriorityScheduler) AverageWaitingTime() (float64, error) {
	return s.average("waiting", s.WaitingTime)
}

func (s *PriorityScheduler) AverageResponseTime() (float64, error) {
	return s.average("response", s.ResponseTime)
}

// average only counts processes that went through Schedule.
func (s *PriorityScheduler) average(name string, metric func(*core.Process) (int, error)) (float64, error) {
	var sum, count int
	for _, process := range s.history {
		if !process.Scheduled() {
			continue
		}
		value, err := metric(process)
		if err != nil {
			return 0, err
		}
		sum += value
		count++
	}
	if count == 0 {
		return 0, errors.Wrapf(ErrNoProcesses, "average %s time", name)
	}
	return float64(sum) / float64(count), nil
}
