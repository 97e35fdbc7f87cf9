package core

// Interval is a half-open span [Start, End) during which one process held the CPU.
type Interval struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

func (i Interval) Duration() int {
	return i.End - i.Start
}

// Timeline is the chronological, non-overlapping execution history of a run.
// Idle time is the gaps between intervals.
type Timeline []Interval

// End returns the end of the last interval, or 0 for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

func (t Timeline) BusyTime() int {
	busy := 0
	for _, interval := range t {
		busy += interval.Duration()
	}
	return busy
}

func (t Timeline) IdleTime() int {
	return t.End() - t.BusyTime()
}

// For returns the intervals belonging to one process, in order.
func (t Timeline) For(processId string) Timeline {
	var out Timeline
	for _, interval := range t {
		if interval.ProcessId == processId {
			out = append(out, interval)
		}
	}
	return out
}

// ContextSwitches counts how often the CPU moved to a different process.
func (t Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t); i++ {
		if t[i].ProcessId != t[i-1].ProcessId {
			switches++
		}
	}
	return switches
}

// Horizon returns the latest time a run over processes can end at: every burst
// executed back to back after the last arrival.
func Horizon(processes []Process) int {
	latest, total := 0, 0
	for _, p := range processes {
		latest = max(latest, p.ArrivalTime)
		total += p.BurstTime
	}
	return latest + total
}
