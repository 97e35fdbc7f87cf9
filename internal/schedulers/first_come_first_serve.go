package schedulers

import (
	"os-scheduler/internal/core"
)

// firstComeFirstServe runs processes to completion in arrival order. The CPU
// jumps straight to the next arrival when it would otherwise sit idle.
func firstComeFirstServe(cpu *core.Cpu, processes []*core.Process, _ Options) {
	for _, p := range processes {
		cpu.AdvanceTo(p.ArrivalTime)
		cpu.Run(p, p.RemainingTime)
	}
}
