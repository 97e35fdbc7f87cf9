package schedulers

import (
	"os-scheduler/internal/core"
)

// Lower priority values are more important.
func byPriority(p *core.Process) int {
	return p.Priority
}

func priorityNonPreemptive(cpu *core.Cpu, processes []*core.Process, _ Options) {
	runNonPreemptive(cpu, processes, byPriority)
}

func priorityPreemptive(cpu *core.Cpu, processes []*core.Process, _ Options) {
	runPreemptive(cpu, processes, byPriority)
}
