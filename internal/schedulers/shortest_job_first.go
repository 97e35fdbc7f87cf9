package schedulers

import (
	"os-scheduler/internal/core"
)

func shortestJobFirst(cpu *core.Cpu, processes []*core.Process, _ Options) {
	runNonPreemptive(cpu, processes, byBurstTime)
}

func byBurstTime(p *core.Process) int {
	return p.BurstTime
}
