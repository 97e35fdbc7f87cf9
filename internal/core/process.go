package core

const (
	// Unset marks a start/finish time that has not been reached yet.
	Unset = -1

	// MaxTime bounds the simulated clock. The latest arrival plus the total
	// burst of a process set must not exceed it.
	MaxTime = 1_000_000
)

// Process is the record the engine schedules. The first four fields are the
// definition supplied by the caller, the rest is filled in by a simulation run.
type Process struct {
	Id          string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`

	RemainingTime  int `json:"remaining_time"`
	StartTime      int `json:"start_time"`
	FinishTime     int `json:"finish_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
}

func NewProcess(id string, arrivalTime, burstTime, priority int) Process {
	p := Process{
		Id:          id,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
	p.Reset()
	return p
}

// Reset drops everything a previous run derived so the definition can be simulated again.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.FinishTime = Unset
	p.WaitingTime = 0
	p.TurnaroundTime = 0
}

// Clone returns an independent copy of the definition, already reset.
func (p Process) Clone() *Process {
	c := p
	c.Reset()
	return &c
}

func (p *Process) Completed() bool {
	return p.RemainingTime == 0
}

func (p *Process) Started() bool {
	return p.StartTime != Unset
}

// ResponseTime is the delay between arrival and the first unit of execution.
func (p *Process) ResponseTime() int {
	if !p.Started() {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}

// Execute accounts for units of CPU time granted at the given clock value.
func (p *Process) Execute(at, units int) {
	if !p.Started() {
		p.StartTime = at
	}
	if units > p.RemainingTime {
		units = p.RemainingTime
	}
	p.RemainingTime -= units
}

// Finish records completion at the given clock value.
func (p *Process) Finish(at int) {
	p.FinishTime = at
	p.TurnaroundTime = p.FinishTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}
