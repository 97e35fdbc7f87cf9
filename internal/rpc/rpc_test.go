package rpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"os-scheduler/internal/metrics"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

func startServer(t *testing.T, collector *metrics.Collector) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := NewGrpcServer()
	RegisterSimulatorServer(srv, NewServer(schedulers.NewScheduler(2, false), collector))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func TestSimulate(t *testing.T) {
	client := startServer(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := client.Simulate(ctx, &requests.ScheduleRequests{
		Algorithm: "srtf",
		Jobs: []requests.Job{
			{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3},
			{ProcessId: "P3", ArrivalTime: 2, BurstTime: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "srtf", response.Algorithm)
	require.Len(t, response.Timeline, 5)
	assert.Equal(t, "P3", response.Timeline[2].ProcessId)
	assert.Equal(t, 9, response.TotalTime)
}

func TestSimulate_DefaultsToFCFS(t *testing.T) {
	client := startServer(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := client.Simulate(ctx, &requests.ScheduleRequests{
		Jobs: []requests.Job{{ArrivalTime: 3, BurstTime: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "fcfs", response.Algorithm)
	require.Len(t, response.Details, 1)
	assert.Equal(t, "P1", response.Details[0].ProcessId)
	assert.Equal(t, 3, response.Details[0].StartTime)
}

func TestSimulate_InvalidArgument(t *testing.T) {
	registry := prometheus.NewRegistry()
	client := startServer(t, metrics.NewCollector(registry))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testCases := []struct {
		name    string
		request *requests.ScheduleRequests
	}{
		{"empty", &requests.ScheduleRequests{Algorithm: "rr"}},
		{"bad burst", &requests.ScheduleRequests{Algorithm: "rr", Jobs: []requests.Job{{ProcessId: "P1", BurstTime: -1}}}},
		{"unknown algorithm", &requests.ScheduleRequests{Algorithm: "lottery", Jobs: []requests.Job{{BurstTime: 1}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Simulate(ctx, tc.request)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}

	series, err := testutil.GatherAndCount(registry, "scheduler_simulation_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "rr/invalid_input and lottery/unknown_algorithm")
}

func TestToStatus(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, status.Code(toStatus(schedulers.ErrEmptyProcessSet)))
	assert.Equal(t, codes.Internal, status.Code(toStatus(context.DeadlineExceeded)))
}
