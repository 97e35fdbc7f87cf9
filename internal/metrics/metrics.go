package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

// Collector exposes Prometheus metrics about the simulations served.
type Collector struct {
	simulations        *prometheus.CounterVec
	failures           *prometheus.CounterVec
	processes          prometheus.Counter
	averageWaitingTime *prometheus.HistogramVec
	averageTurnaround  *prometheus.HistogramVec
	cpuUtilization     *prometheus.GaugeVec
	latency            prometheus.Histogram

	registry *prometheus.Registry
}

var timeBuckets = []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500}

func NewCollector(registry *prometheus.Registry) *Collector {
	c := &Collector{
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulations_total",
			Help: "Total number of completed simulations",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulation_failures_total",
			Help: "Total number of rejected simulations",
		}, []string{"algorithm", "reason"}),
		processes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_processes_simulated_total",
			Help: "Total number of processes scheduled across all simulations",
		}),
		averageWaitingTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_average_waiting_time_units",
			Help:    "Average waiting time of a simulation in time units",
			Buckets: timeBuckets,
		}, []string{"algorithm"}),
		averageTurnaround: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_average_turnaround_time_units",
			Help:    "Average turnaround time of a simulation in time units",
			Buckets: timeBuckets,
		}, []string{"algorithm"}),
		cpuUtilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_cpu_utilization_percent",
			Help: "CPU utilization of the most recent simulation",
		}, []string{"algorithm"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_simulation_latency_seconds",
			Help:    "Wall-clock time spent computing a simulation",
			Buckets: prometheus.DefBuckets,
		}),
		registry: registry,
	}

	registry.MustRegister(
		c.simulations,
		c.failures,
		c.processes,
		c.averageWaitingTime,
		c.averageTurnaround,
		c.cpuUtilization,
		c.latency,
	)
	return c
}

// RecordSimulation records a successful run and the time it took to compute.
func (c *Collector) RecordSimulation(response responses.ScheduleResponse, latencySeconds float64) {
	c.simulations.WithLabelValues(response.Algorithm).Inc()
	c.processes.Add(float64(len(response.Details)))
	c.averageWaitingTime.WithLabelValues(response.Algorithm).Observe(response.AverageWaitingTime)
	c.averageTurnaround.WithLabelValues(response.Algorithm).Observe(response.AverageTurnAroundTime)
	c.cpuUtilization.WithLabelValues(response.Algorithm).Set(response.CpuUtilization)
	c.latency.Observe(latencySeconds)
}

func (c *Collector) RecordFailure(algorithm string, err error) {
	c.failures.WithLabelValues(algorithm, FailureReason(err)).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func FailureReason(err error) string {
	switch {
	case errors.Is(err, schedulers.ErrEmptyProcessSet):
		return "empty_process_set"
	case errors.Is(err, schedulers.ErrInvalidInput), errors.Is(err, requests.ErrInvalidRequest):
		return "invalid_input"
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return "unknown_algorithm"
	default:
		return "internal"
	}
}
