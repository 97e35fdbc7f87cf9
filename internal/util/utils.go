package util

import (
	"math"

	"os-scheduler/internal/core"
)

func CalculateAverage(processes []*core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime())
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processes))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
