package schedulers

import (
	"os-scheduler/internal/core"
)

// roundRobin serves a FIFO ready queue in slices of at most opts.TimeQuantum.
// Processes that arrived while a slice ran join the queue before the
// preempted process goes back to its tail.
func roundRobin(cpu *core.Cpu, processes []*core.Process, opts Options) {
	quantum := opts.TimeQuantum
	readyQueue := make([]*core.Process, 0, len(processes))
	next := 0

	admit := func() {
		for next < len(processes) && processes[next].ArrivalTime <= cpu.Clock() {
			readyQueue = append(readyQueue, processes[next])
			next++
		}
	}

	completed := 0
	for completed < len(processes) {
		admit()
		if len(readyQueue) == 0 {
			cpu.AdvanceTo(processes[next].ArrivalTime)
			continue
		}

		process := readyQueue[0]
		readyQueue = readyQueue[1:]
		cpu.Run(process, min(quantum, process.RemainingTime))

		admit()
		if process.Completed() {
			completed++
		} else {
			readyQueue = append(readyQueue, process)
		}
	}
}
