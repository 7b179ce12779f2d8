// Package report renders a finished run as plain text: a title, a Gantt
// bar and a results table with the run-wide averages in the footer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/replay"
	"os-scheduler/internal/responses"
)

// Write renders one run.
func Write(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	outputGantt(w, response.GanttChart)
	outputSchedule(w, response)
}

// WriteComparison renders every run followed by a one-line-per-policy
// summary.
func WriteComparison(w io.Writer, comparison responses.ComparisonResponse) {
	for _, r := range comparison.Results {
		Write(w, r)
	}
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg turnaround", "Avg waiting", "Avg response", "Utilization", "Total"})
	for _, r := range comparison.Results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprint(r.TotalTime),
		})
	}
	table.Render()
}

// WriteFrame renders one replay step: the clock, the processor and the
// ready queue.
func WriteFrame(w io.Writer, frame replay.Frame) {
	running := frame.Running
	if running == "" {
		running = "idle"
	} else {
		running = fmt.Sprintf("%s (remaining %d)", running, frame.Remaining[running])
	}
	_, _ = fmt.Fprintf(w, "t=%-4d cpu: %-24s ready: [%s]\n", frame.Clock, running, strings.Join(frame.Queue, " "))
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt draws one cell per segment. Idle gaps get their own cell so
// the tick labels stay continuous.
func outputGantt(w io.Writer, gantt []core.RunSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	type cell struct {
		label      string
		start, end int
	}
	cells := make([]cell, 0, len(gantt))
	clock := 0
	for _, s := range gantt {
		if s.Start > clock {
			cells = append(cells, cell{label: "-", start: clock, end: s.Start})
		}
		cells = append(cells, cell{label: s.Process, start: s.Start, end: s.End})
		clock = s.End
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	for _, c := range cells {
		width := len(c.label) + 2
		if width < 8 {
			width = 8
		}
		left := (width - len(c.label)) / 2
		bar.WriteString(strings.Repeat(" ", left) + c.label + strings.Repeat(" ", width-left-len(c.label)) + "|")
		label := fmt.Sprint(c.start)
		ticks.WriteString(label + strings.Repeat(" ", width+1-len(label)))
	}
	ticks.WriteString(fmt.Sprint(cells[len(cells)-1].end))

	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Start", "Finish", "Turnaround", "Waiting", "Response"})
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.FinishTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Total %d", response.TotalTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.2f/t\n\n", response.CpuUtilization*100, response.CpuThroughput)
}
