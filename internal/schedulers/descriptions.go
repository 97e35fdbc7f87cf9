package schedulers

import (
	"os-scheduler/internal/responses"
)

type Description struct {
	Name            string
	Description     string
	Characteristics []string
}

var descriptions = map[Algorithm]Description{
	FirstComeFirstServe: {
		Name:        "First Come First Serve (FCFS)",
		Description: "Schedules processes in the order they arrive.",
		Characteristics: []string{
			"Non-preemptive",
			"Processes are executed in order of arrival",
			"Simple but may result in long waiting times",
			"Convoy effect may occur when a short process waits behind a long one",
		},
	},
	ShortestJobFirst: {
		Name:        "Shortest Job First (SJF)",
		Description: "Whenever the CPU is free, runs the ready process with the shortest burst time.",
		Characteristics: []string{
			"Non-preemptive",
			"Processes with the shortest burst time run first",
			"Minimises average waiting time among non-preemptive policies",
			"Requires burst times to be known in advance",
		},
	},
	ShortestRemainingTimeFirst: {
		Name:        "Shortest Remaining Time First (SRTF)",
		Description: "Preemptive SJF: the process with the least remaining burst time always holds the CPU.",
		Characteristics: []string{
			"Preemptive",
			"Re-evaluated every time unit",
			"Lower waiting time than SJF at the cost of more context switches",
			"Long processes may starve",
		},
	},
	RoundRobin: {
		Name:        "Round Robin (RR)",
		Description: "Serves a FIFO ready queue, giving each process at most one time quantum per turn.",
		Characteristics: []string{
			"Preemptive",
			"Every process gets an equal share of the CPU",
			"Performance depends heavily on the time quantum",
			"No starvation",
		},
	},
	PriorityNonPreemptive: {
		Name:        "Priority Scheduling (Non-preemptive)",
		Description: "Whenever the CPU is free, runs the ready process with the lowest priority number.",
		Characteristics: []string{
			"Non-preemptive",
			"Lower number means higher priority",
			"Equal priorities are served in arrival order",
			"Low priority processes may starve",
		},
	},
	PriorityPreemptive: {
		Name:        "Priority Scheduling (Preemptive)",
		Description: "A newly arrived process with a lower priority number takes the CPU immediately.",
		Characteristics: []string{
			"Preemptive",
			"Higher priority processes interrupt lower priority ones",
			"Better response time for high priority processes",
			"Starvation can be a serious problem",
		},
	},
}

func Describe(algorithm Algorithm) Description {
	return descriptions[algorithm]
}

// Catalogue describes every supported algorithm in Algorithms() order.
func Catalogue() []responses.AlgorithmResponse {
	out := make([]responses.AlgorithmResponse, 0, len(descriptions))
	for _, algorithm := range Algorithms() {
		d := Describe(algorithm)
		out = append(out, responses.AlgorithmResponse{
			Id:              string(algorithm),
			Name:            d.Name,
			Description:     d.Description,
			Preemptive:      algorithm.Preemptive(),
			Characteristics: d.Characteristics,
		})
	}
	return out
}
