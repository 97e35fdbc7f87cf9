package requests

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadJobs reads a process set from a .json, .yaml/.yml or .csv file.
// JSON and YAML files may hold either a bare list of jobs or a full request.
func LoadJobs(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJobs(f, json.Unmarshal)
	case ".yaml", ".yml":
		return decodeJobs(f, yaml.Unmarshal)
	case ".csv":
		jobs, err := ParseCSV(f)
		if err != nil {
			return nil, err
		}
		return &ScheduleRequests{Jobs: jobs}, nil
	default:
		return nil, fmt.Errorf("unsupported job file format %q", filepath.Ext(path))
	}
}

func decodeJobs(r io.Reader, unmarshal func([]byte, any) error) (*ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var jobs []Job
	if err := unmarshal(data, &jobs); err == nil {
		return &ScheduleRequests{Jobs: jobs}, nil
	}

	var request ScheduleRequests
	if err := unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	return &request, nil
}

// ParseCSV reads rows of id,arrival,burst[,priority]. A first row whose
// arrival and burst columns are both non-numeric is treated as a header.
func ParseCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: line %d: expected id,arrival,burst[,priority]", ErrInvalidRequest, i+1)
		}
		if i == 0 && isHeader(row) {
			continue
		}

		job := Job{ProcessId: strings.TrimSpace(row[0])}
		if job.ArrivalTime, err = parseField(row[1], "arrival", i); err != nil {
			return nil, err
		}
		if job.BurstTime, err = parseField(row[2], "burst", i); err != nil {
			return nil, err
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			if job.Priority, err = parseField(row[3], "priority", i); err != nil {
				return nil, err
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	_, arrivalErr := strconv.Atoi(strings.TrimSpace(row[1]))
	_, burstErr := strconv.Atoi(strings.TrimSpace(row[2]))
	return arrivalErr != nil && burstErr != nil
}

func parseField(value, name string, line int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrInvalidRequest, line+1, name, value)
	}
	return n, nil
}
