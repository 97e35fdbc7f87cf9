package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

// sortByArrival returns the processes ordered by arrival time. Processes that
// arrive together keep their input order, which is the tie-break every
// algorithm falls back on.
func sortByArrival(processes []*core.Process) []*core.Process {
	sorted := make([]*core.Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}

// readySet collects the arrived, unfinished processes at time now. It is
// derived from scratch on every call and never carried between decisions.
func readySet(processes []*core.Process, now int) []*core.Process {
	ready := make([]*core.Process, 0, len(processes))
	for _, p := range processes {
		if p.ArrivalTime <= now && !p.Completed() {
			ready = append(ready, p)
		}
	}
	return ready
}

// nextArrival returns the earliest arrival after now among unfinished
// processes, or now when there is none.
func nextArrival(processes []*core.Process, now int) int {
	next := now
	for _, p := range processes {
		if p.ArrivalTime > now && !p.Completed() && (next == now || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	return next
}

// selectFirstMin picks the candidate with the smallest key. On equal keys the
// earlier candidate wins, so arrival order decides ties.
func selectFirstMin(candidates []*core.Process, key func(*core.Process) int) *core.Process {
	var selected *core.Process
	for _, p := range candidates {
		if selected == nil || key(p) < key(selected) {
			selected = p
		}
	}
	return selected
}

// runNonPreemptive repeatedly picks the best ready process by key and runs it
// to completion.
func runNonPreemptive(cpu *core.Cpu, processes []*core.Process, key func(*core.Process) int) {
	completed := 0
	for completed < len(processes) {
		next := selectFirstMin(readySet(processes, cpu.Clock()), key)
		if next == nil {
			cpu.AdvanceTo(nextArrival(processes, cpu.Clock()))
			continue
		}
		cpu.Run(next, next.RemainingTime)
		completed++
	}
}

// runPreemptive re-evaluates the ready set every time unit and gives one unit
// to the best process by key.
func runPreemptive(cpu *core.Cpu, processes []*core.Process, key func(*core.Process) int) {
	completed := 0
	for completed < len(processes) {
		next := selectFirstMin(readySet(processes, cpu.Clock()), key)
		if next == nil {
			cpu.AdvanceTo(nextArrival(processes, cpu.Clock()))
			continue
		}
		cpu.Tick(next)
		if next.Completed() {
			completed++
		}
	}
}
