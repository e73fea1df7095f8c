package schedulers

import "github.com/pkg/errors"

var (
	ErrEmptyQueue         = errors.New("ready queue is empty")
	ErrUnscheduledProcess = errors.New("process has not been scheduled")
	ErrNoProcesses        = errors.New("no processes to average")
)
