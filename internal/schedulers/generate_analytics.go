package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

type Statistics struct {
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64
	TotalTime             int
	BusyTime              int
	IdleTime              int
	ContextSwitches       int
	CpuThroughput         float64
	CpuUtilization        float64
}

// CalculateStatistics derives the aggregate metrics of a completed run.
// Utilization is reported as 0 for an empty timeline.
func CalculateStatistics(processes []*core.Process, timeline core.Timeline) Statistics {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processes)

	stats := Statistics{
		AverageWaitingTime:    util.Round(averageWaitingTime, 2),
		AverageTurnAroundTime: util.Round(averageTurnAroundTime, 2),
		AverageResponseTime:   util.Round(averageResponseTime, 2),
		TotalTime:             timeline.End(),
		BusyTime:              timeline.BusyTime(),
		IdleTime:              timeline.IdleTime(),
		ContextSwitches:       timeline.ContextSwitches(),
	}

	stats.CpuThroughput = util.Round(float64(len(processes))/float64(max(stats.TotalTime, 1)), 2)
	if stats.TotalTime > 0 {
		stats.CpuUtilization = util.Round(100*float64(stats.BusyTime)/float64(stats.TotalTime), 1)
	}
	return stats
}

func generateResponse(sim *Simulation) responses.ScheduleResponse {
	stats := sim.Statistics
	response := responses.ScheduleResponse{
		Algorithm:             string(sim.Algorithm),
		TimeQuantum:           sim.TimeQuantum,
		TotalTime:             stats.TotalTime,
		BusyTime:              stats.BusyTime,
		IdleTime:              stats.IdleTime,
		ContextSwitches:       stats.ContextSwitches,
		AverageWaitingTime:    stats.AverageWaitingTime,
		AverageResponseTime:   stats.AverageResponseTime,
		AverageTurnAroundTime: stats.AverageTurnAroundTime,
		CpuUtilization:        stats.CpuUtilization,
		CpuThroughput:         stats.CpuThroughput,
		Timeline:              make([]responses.IntervalResponse, 0, len(sim.Timeline)),
		Details:               make([]responses.ProcessResponse, 0, len(sim.Processes)),
	}

	for _, interval := range sim.Timeline {
		response.Timeline = append(response.Timeline, responses.IntervalResponse{
			ProcessId: interval.ProcessId,
			Start:     interval.Start,
			End:       interval.End,
		})
	}
	for _, process := range sim.Processes {
		response.Details = append(response.Details, generateProcessDetails(process))
	}
	return response
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.Id,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		StartTime:      process.StartTime,
		FinishTime:     process.FinishTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
