package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

func TestWriteGantt_ShowsIdleGaps(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, []responses.IntervalResponse{
		{ProcessId: "P1", Start: 2, End: 4},
		{ProcessId: "P2", Start: 4, End: 5},
	})

	out := buf.String()
	assert.Contains(t, out, "idle")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "0\t2\t4\t5")
}

func TestWriteGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, nil)

	assert.Contains(t, buf.String(), "(empty)")
}

func TestWriteResponse(t *testing.T) {
	response, err := schedulers.NewScheduler(2, false).Schedule(&requests.ScheduleRequests{
		Algorithm: "rr",
		Jobs: []requests.Job{
			{ProcessId: "P1", BurstTime: 3, Priority: 1},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 2, Priority: 1},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteResponse(&buf, response)

	out := buf.String()
	assert.Contains(t, out, "Round Robin (RR), quantum 2")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "CPU utilization: 100.0%")
}

func TestWriteComparison(t *testing.T) {
	results, err := schedulers.NewScheduler(2, false).ScheduleAll(&requests.ScheduleRequests{
		Jobs: []requests.Job{{ProcessId: "P1", BurstTime: 3, Priority: 1}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteComparison(&buf, results)

	for _, algorithm := range schedulers.Algorithms() {
		assert.Contains(t, buf.String(), string(algorithm))
	}
}

func TestWriteCatalogue(t *testing.T) {
	var buf bytes.Buffer
	WriteCatalogue(&buf, schedulers.Catalogue())

	assert.Contains(t, buf.String(), "Shortest Remaining Time First (SRTF)")
}
