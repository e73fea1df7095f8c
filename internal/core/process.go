package core

// Unscheduled marks timing fields that the scheduler has not filled yet.
const Unscheduled = -1

// Process is one unit of work handed to the CPU. StartTime and CompletionTime
// are written by the scheduler exactly once.
type Process struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	Priority       int // lower value runs first
	StartTime      int
	CompletionTime int

	scheduled bool
}

func NewProcess(id, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		ID:             id,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		Priority:       priority,
		StartTime:      Unscheduled,
		CompletionTime: Unscheduled,
	}
}

// Dispatch records that the process ran from start for its full burst. A
// non-positive burst can legitimately leave -1 in a timing field, so the
// scheduled state is tracked separately from the sentinel.
func (p *Process) Dispatch(start int) {
	p.StartTime = start
	p.CompletionTime = start + p.BurstTime
	p.scheduled = true
}

func (p *Process) Scheduled() bool {
	return p.scheduled
}

// Slot is one contiguous run of a process on the CPU.
type Slot struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}
