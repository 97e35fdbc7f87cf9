package schedulers

import (
	"os-scheduler/internal/core"
)

// shortestRemainingTimeFirst is the preemptive form of shortest job first: a
// newly arrived process takes the CPU as soon as its burst is shorter than
// what the running process still needs.
func shortestRemainingTimeFirst(cpu *core.Cpu, processes []*core.Process, _ Options) {
	runPreemptive(cpu, processes, byRemainingTime)
}

func byRemainingTime(p *core.Process) int {
	return p.RemainingTime
}
