package cli

import (
	"bytes"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/responses"
	"os-scheduler/internal/rpc"
	"os-scheduler/internal/schedulers"
)

const jobsYAML = `algorithm: sjf
jobs:
  - process_id: P1
    arrival_time: 0
    burst_time: 5
  - process_id: P2
    arrival_time: 1
    burst_time: 3
  - process_id: P3
    arrival_time: 2
    burst_time: 1
`

func writeJobFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := BuildCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	assert.Equal(t, "scheduler", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Use] = true
	}
	assert.True(t, names["simulate"])
	assert.True(t, names["serve"])
	assert.True(t, names["algorithms"])

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestBuildSimulateCommand(t *testing.T) {
	cmd := buildSimulateCommand()

	fileFlag := cmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
	assert.Equal(t, "fcfs", cmd.Flags().Lookup("algorithm").DefValue)
	assert.NotNil(t, cmd.RunE)
}

func TestSimulate_UsesAlgorithmFromFile(t *testing.T) {
	path := writeJobFile(t, "jobs.yaml", jobsYAML)

	out, err := execute(t, "simulate", "-f", path, "--output", "json")
	require.NoError(t, err)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "sjf", response.Algorithm)
	assert.Equal(t, []responses.IntervalResponse{
		{ProcessId: "P1", Start: 0, End: 5},
		{ProcessId: "P3", Start: 5, End: 6},
		{ProcessId: "P2", Start: 6, End: 9},
	}, response.Timeline)
}

func TestSimulate_FlagOverridesFile(t *testing.T) {
	path := writeJobFile(t, "jobs.yaml", jobsYAML)

	out, err := execute(t, "simulate", "-f", path, "-a", "rr", "-q", "3", "-o", "json")
	require.NoError(t, err)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "rr", response.Algorithm)
	assert.Equal(t, 3, response.TimeQuantum)
}

func TestSimulate_CSVTable(t *testing.T) {
	path := writeJobFile(t, "jobs.csv", "id,arrival,burst,priority\nP1,0,4,2\nP2,1,2,1\n")

	out, err := execute(t, "simulate", "-f", path, "-a", "priority-preemptive")
	require.NoError(t, err)

	assert.Contains(t, out, "Priority Scheduling (Preemptive)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "CPU utilization: 100.0%")
}

func TestSimulate_All(t *testing.T) {
	path := writeJobFile(t, "jobs.json", `[{"process_id": "A", "burst_time": 2}, {"process_id": "B", "arrival_time": 1, "burst_time": 1}]`)

	out, err := execute(t, "simulate", "-f", path, "--all", "-o", "json")
	require.NoError(t, err)

	var results []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(schedulers.Algorithms()))
	for i, algorithm := range schedulers.Algorithms() {
		assert.Equal(t, string(algorithm), results[i].Algorithm)
	}
}

func TestSimulate_Errors(t *testing.T) {
	valid := writeJobFile(t, "jobs.yaml", jobsYAML)

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing file flag", []string{"simulate"}, "required flag"},
		{"unknown format", []string{"simulate", "-f", writeJobFile(t, "jobs.txt", "x")}, "unsupported job file format"},
		{"unknown algorithm", []string{"simulate", "-f", valid, "-a", "lottery"}, "unknown algorithm"},
		{"unknown output", []string{"simulate", "-f", valid, "-o", "xml"}, "unknown output format"},
		{"invalid job", []string{"simulate", "-f", writeJobFile(t, "bad.csv", "P1,0,0\n")}, "burst time"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSimulate_Remote(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := rpc.NewGrpcServer()
	rpc.RegisterSimulatorServer(srv, rpc.NewServer(schedulers.NewScheduler(2, false), nil))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	path := writeJobFile(t, "jobs.yaml", jobsYAML)
	out, err := execute(t, "simulate", "-f", path, "--all", "-o", "json", "--remote", lis.Addr().String())
	require.NoError(t, err)

	var results []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 6)
	assert.Equal(t, "fcfs", results[0].Algorithm)
	assert.Equal(t, 2, results[3].TimeQuantum)
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := execute(t, "algorithms", "-o", "json")
	require.NoError(t, err)

	var catalogue []responses.AlgorithmResponse
	require.NoError(t, json.Unmarshal([]byte(out), &catalogue))
	assert.Len(t, catalogue, 6)

	out, err = execute(t, "algorithms")
	require.NoError(t, err)
	assert.Contains(t, out, "Round Robin (RR)")
}
