package requests

import (
	"errors"
	"fmt"

	"os-scheduler/internal/core"
)

const (
	DefaultTimeQuantum = 2
	DefaultPriority    = 1
)

var ErrInvalidRequest = errors.New("invalid request")

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Algorithm   string `json:"algorithm" yaml:"algorithm"`
	TimeQuantum int    `json:"time_quantum" yaml:"time_quantum"`
	Jobs        []Job  `json:"jobs" yaml:"jobs"`
}

// Normalize fills in the values a form would default: a generated P<n> id,
// priority 1 when none was given and the default quantum when the supplied
// one is not positive.
func (r *ScheduleRequests) Normalize(defaultQuantum int) {
	if defaultQuantum <= 0 {
		defaultQuantum = DefaultTimeQuantum
	}
	if r.TimeQuantum <= 0 {
		r.TimeQuantum = defaultQuantum
	}
	for i := range r.Jobs {
		if r.Jobs[i].ProcessId == "" {
			r.Jobs[i].ProcessId = fmt.Sprintf("P%d", i+1)
		}
		if r.Jobs[i].Priority == 0 {
			r.Jobs[i].Priority = DefaultPriority
		}
	}
}

func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("%w: at least one process is required", ErrInvalidRequest)
	}
	seen := make(map[string]struct{}, len(r.Jobs))
	latest, total := 0, 0
	for _, job := range r.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if _, ok := seen[job.ProcessId]; ok {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidRequest, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		latest = max(latest, job.ArrivalTime)
		total += job.BurstTime
	}
	if latest+total > core.MaxTime {
		return fmt.Errorf("%w: the jobs run until %d, past the %d time unit limit", ErrInvalidRequest, latest+total, core.MaxTime)
	}
	return nil
}

func (j Job) Validate() error {
	switch {
	case j.ProcessId == "":
		return fmt.Errorf("%w: process id is required", ErrInvalidRequest)
	case j.ArrivalTime < 0:
		return fmt.Errorf("%w: process %s: arrival time must not be negative", ErrInvalidRequest, j.ProcessId)
	case j.BurstTime <= 0:
		return fmt.Errorf("%w: process %s: burst time must be greater than 0", ErrInvalidRequest, j.ProcessId)
	case j.Priority <= 0:
		return fmt.Errorf("%w: process %s: priority must be greater than 0", ErrInvalidRequest, j.ProcessId)
	case j.ArrivalTime > core.MaxTime || j.BurstTime > core.MaxTime:
		return fmt.Errorf("%w: process %s: times must not exceed %d", ErrInvalidRequest, j.ProcessId, core.MaxTime)
	}
	return nil
}
