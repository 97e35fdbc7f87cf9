package schedulers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	PriorityNonPreemptive      Algorithm = "priority"
	PriorityPreemptive         Algorithm = "priority-preemptive"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmptyProcessSet  = errors.New("empty process set")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

type runner func(cpu *core.Cpu, processes []*core.Process, opts Options)

var runners = map[Algorithm]runner{
	FirstComeFirstServe:        firstComeFirstServe,
	ShortestJobFirst:           shortestJobFirst,
	ShortestRemainingTimeFirst: shortestRemainingTimeFirst,
	RoundRobin:                 roundRobin,
	PriorityNonPreemptive:      priorityNonPreemptive,
	PriorityPreemptive:         priorityPreemptive,
}

// Algorithms lists every supported policy in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
		RoundRobin,
		PriorityNonPreemptive,
		PriorityPreemptive,
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "priority-premptive" {
		return PriorityPreemptive, nil
	}
	algorithm := Algorithm(name)
	if _, ok := runners[algorithm]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return algorithm, nil
}

func (a Algorithm) Preemptive() bool {
	switch a {
	case ShortestRemainingTimeFirst, RoundRobin, PriorityPreemptive:
		return true
	}
	return false
}

type Options struct {
	// TimeQuantum is only read by round robin. Non-positive values fall back
	// to requests.DefaultTimeQuantum.
	TimeQuantum int
	Verbose     bool
}

// Simulation is the outcome of one run. Processes keep the caller's input
// order and carry the derived start, finish, waiting and turnaround times.
type Simulation struct {
	Algorithm   Algorithm
	TimeQuantum int
	Processes   []*core.Process
	Timeline    core.Timeline
	Statistics  Statistics
}

// Simulate runs algorithm over a private copy of definitions. The definitions
// themselves are never modified, so the same set can be simulated repeatedly
// or concurrently under different policies.
func Simulate(definitions []core.Process, algorithm Algorithm, opts Options) (*Simulation, error) {
	run, ok := runners[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if err := validateDefinitions(definitions); err != nil {
		return nil, err
	}
	if opts.TimeQuantum <= 0 {
		opts.TimeQuantum = requests.DefaultTimeQuantum
	}

	processes := make([]*core.Process, len(definitions))
	for i := range definitions {
		processes[i] = definitions[i].Clone()
	}

	cpu := core.NewCpu()
	cpu.Verbose = opts.Verbose
	run(cpu, sortByArrival(processes), opts)

	sim := &Simulation{
		Algorithm: algorithm,
		Processes: processes,
		Timeline:  cpu.Timeline(),
	}
	if algorithm == RoundRobin {
		sim.TimeQuantum = opts.TimeQuantum
	}
	sim.Statistics = CalculateStatistics(sim.Processes, sim.Timeline)
	return sim, nil
}

func validateDefinitions(definitions []core.Process) error {
	if len(definitions) == 0 {
		return ErrEmptyProcessSet
	}
	seen := make(map[string]struct{}, len(definitions))
	for _, p := range definitions {
		switch {
		case p.Id == "":
			return fmt.Errorf("%w: process id is required", ErrInvalidInput)
		case p.ArrivalTime < 0:
			return fmt.Errorf("%w: process %s: negative arrival time %d", ErrInvalidInput, p.Id, p.ArrivalTime)
		case p.BurstTime <= 0:
			return fmt.Errorf("%w: process %s: burst time %d must be positive", ErrInvalidInput, p.Id, p.BurstTime)
		case p.Priority <= 0:
			return fmt.Errorf("%w: process %s: priority %d must be positive", ErrInvalidInput, p.Id, p.Priority)
		case p.ArrivalTime > core.MaxTime || p.BurstTime > core.MaxTime:
			return fmt.Errorf("%w: process %s: times must not exceed %d", ErrInvalidInput, p.Id, core.MaxTime)
		}
		if _, ok := seen[p.Id]; ok {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidInput, p.Id)
		}
		seen[p.Id] = struct{}{}
	}
	if horizon := core.Horizon(definitions); horizon > core.MaxTime {
		return fmt.Errorf("%w: process set runs until %d, past the %d time unit limit", ErrInvalidInput, horizon, core.MaxTime)
	}
	return nil
}

// Scheduler turns schedule requests into responses.
type Scheduler struct {
	DefaultTimeQuantum int
	Verbose            bool
}

func NewScheduler(defaultTimeQuantum int, verbose bool) *Scheduler {
	if defaultTimeQuantum <= 0 {
		defaultTimeQuantum = requests.DefaultTimeQuantum
	}
	return &Scheduler{DefaultTimeQuantum: defaultTimeQuantum, Verbose: verbose}
}

// Schedule runs the algorithm named in the request.
func (s *Scheduler) Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	algorithm, err := ParseAlgorithm(request.Algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return s.ScheduleWith(request, algorithm)
}

func (s *Scheduler) ScheduleWith(request *requests.ScheduleRequests, algorithm Algorithm) (responses.ScheduleResponse, error) {
	quantum := request.TimeQuantum
	if quantum <= 0 {
		quantum = s.DefaultTimeQuantum
	}
	if s.Verbose {
		log.Println("running", algorithm, "algorithm with", len(request.Jobs), "processes")
	}

	sim, err := Simulate(Definitions(request.Jobs), algorithm, Options{TimeQuantum: quantum, Verbose: s.Verbose})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(sim)
	if s.Verbose {
		log.Printf("response is: %+v", response)
	}
	return response, nil
}

// ScheduleAll runs every algorithm over the same request, one goroutine per
// algorithm, and returns the responses in Algorithms() order.
func (s *Scheduler) ScheduleAll(request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	algorithms := Algorithms()
	results := make([]responses.ScheduleResponse, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = s.ScheduleWith(request, algorithm)
		}(i, algorithm)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithms[i], err)
		}
	}
	return results, nil
}

// Definitions converts request jobs into process definitions.
func Definitions(jobs []requests.Job) []core.Process {
	definitions := make([]core.Process, len(jobs))
	for i, job := range jobs {
		definitions[i] = core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
	}
	return definitions
}
