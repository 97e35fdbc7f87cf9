package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

const idleLabel = "idle"

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteGantt prints the timeline as a text Gantt chart. Gaps between
// intervals are shown as idle slots.
func WriteGantt(w io.Writer, timeline []responses.IntervalResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	slots := make([]responses.IntervalResponse, 0, len(timeline))
	clock := 0
	for _, interval := range timeline {
		if interval.Start > clock {
			slots = append(slots, responses.IntervalResponse{ProcessId: idleLabel, Start: clock, End: interval.Start})
		}
		slots = append(slots, interval)
		clock = interval.End
	}

	_, _ = fmt.Fprint(w, "|")
	for _, slot := range slots {
		label := slot.ProcessId
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, slot := range slots {
		_, _ = fmt.Fprint(w, slot.Start, "\t")
		if i == len(slots)-1 {
			_, _ = fmt.Fprint(w, slot.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func WriteSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(response.Details))
	for _, p := range response.Details {
		rows = append(rows, []string{
			p.ProcessId,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.FinishTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("avg %.2f", response.AverageWaitingTime),
		fmt.Sprintf("avg %.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.1f%% (busy %d of %d, idle %d, %d context switches)\n\n",
		response.CpuUtilization, response.BusyTime, response.TotalTime, response.IdleTime, response.ContextSwitches)
}

// WriteResponse prints the full report for one simulation.
func WriteResponse(w io.Writer, response responses.ScheduleResponse) {
	title := schedulers.Describe(schedulers.Algorithm(response.Algorithm)).Name
	if title == "" {
		title = response.Algorithm
	}
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s, quantum %d", title, response.TimeQuantum)
	}

	WriteTitle(w, title)
	WriteGantt(w, response.Timeline)
	WriteSchedule(w, response)
}

// WriteComparison prints one summary row per algorithm.
func WriteComparison(w io.Writer, results []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Throughput", "CPU %", "Switches"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.2f", r.CpuThroughput),
			fmt.Sprintf("%.1f", r.CpuUtilization),
			fmt.Sprint(r.ContextSwitches),
		})
	}
	table.Render()
}

func WriteCatalogue(w io.Writer, catalogue []responses.AlgorithmResponse) {
	for _, a := range catalogue {
		_, _ = fmt.Fprintf(w, "%s  %s\n", a.Id, a.Name)
		_, _ = fmt.Fprintf(w, "    %s\n", a.Description)
		for _, c := range a.Characteristics {
			_, _ = fmt.Fprintf(w, "    - %s\n", c)
		}
		_, _ = fmt.Fprintln(w)
	}
}
