package core

import (
	"log"
)

// Cpu is a single simulated core driven in integer time units. It owns the
// clock and the timeline: an interval is opened when a process is dispatched
// and closed as soon as the CPU moves on to anything else.
type Cpu struct {
	Verbose bool

	clock    int
	running  *Process
	since    int
	timeline Timeline
}

func NewCpu() *Cpu {
	return &Cpu{}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// AdvanceTo jumps the clock forward to t with nothing running. The skipped
// units show up as a gap in the timeline.
func (c *Cpu) AdvanceTo(t int) {
	if t <= c.clock {
		return
	}
	c.release()
	c.clock = t
}

// Run gives p the CPU for units time units without preemption and records the
// slice as one interval. The process is finished if the slice exhausts it.
func (c *Cpu) Run(p *Process, units int) {
	if units > p.RemainingTime {
		units = p.RemainingTime
	}
	if units <= 0 {
		return
	}
	c.release()
	c.trace(p, "run", units)

	start := c.clock
	p.Execute(start, units)
	c.clock += units
	c.timeline = append(c.timeline, Interval{ProcessId: p.Id, Start: start, End: c.clock})

	if p.Completed() {
		p.Finish(c.clock)
		c.trace(p, "completed", 0)
	}
}

// Tick runs p for a single unit. A new interval starts only when p is not the
// process that ran in the previous unit.
func (c *Cpu) Tick(p *Process) {
	if p.Completed() {
		return
	}
	if c.running != p {
		c.release()
		c.running = p
		c.since = c.clock
		c.trace(p, "dispatch", 0)
	}

	p.Execute(c.clock, 1)
	c.clock++

	if p.Completed() {
		c.release()
		p.Finish(c.clock)
		c.trace(p, "completed", 0)
	}
}

// Timeline closes any open interval and returns the execution history so far.
func (c *Cpu) Timeline() Timeline {
	c.release()
	out := make(Timeline, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *Cpu) release() {
	if c.running == nil {
		return
	}
	if c.clock > c.since {
		c.timeline = append(c.timeline, Interval{ProcessId: c.running.Id, Start: c.since, End: c.clock})
	}
	c.running = nil
}

func (c *Cpu) trace(p *Process, event string, units int) {
	if !c.Verbose {
		return
	}
	if units > 0 {
		log.Println("pid:", p.Id, event, "at", c.clock, "for", units, "units")
		return
	}
	log.Println("pid:", p.Id, event, "at", c.clock)
}
