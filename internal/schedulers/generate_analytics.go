package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// CalculateStats derives per-process times from a trace, in input order.
// Finish is the end of a process's last segment and start is the beginning
// of its first.
func CalculateStats(set *core.ProcessSet, trace []core.RunSegment) ([]responses.ProcessResponse, error) {
	first := make(map[string]int, set.Len())
	last := make(map[string]int, set.Len())
	for _, seg := range trace {
		if _, ok := first[seg.Process]; !ok {
			first[seg.Process] = seg.Start
		}
		last[seg.Process] = seg.End
	}

	details := make([]responses.ProcessResponse, 0, set.Len())
	for _, p := range set.Processes() {
		finish, ok := last[p.Name]
		if !ok {
			return nil, &core.IncompleteTraceError{Process: p.Name}
		}
		turnaround := finish - p.ArrivalTime
		waiting := turnaround - p.BurstTime
		if waiting < 0 {
			return nil, fmt.Errorf("process %q: negative waiting time %d (finish %d, arrival %d, burst %d)",
				p.Name, waiting, finish, p.ArrivalTime, p.BurstTime)
		}
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.Name,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			StartTime:      first[p.Name],
			FinishTime:     finish,
			TurnAroundTime: turnaround,
			WaitingTime:    waiting,
			ResponseTime:   first[p.Name] - p.ArrivalTime,
		})
	}
	return details, nil
}

func generateResponse(sched Scheduler, trace []core.RunSegment, processDetails []responses.ProcessResponse) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)
	metric := core.MeasureCpu(trace)

	response := responses.ScheduleResponse{
		Algorithm:             string(sched.Policy()),
		GanttChart:            trace,
		TotalTime:             metric.TotalTime,
		BusyTime:              metric.UtilizationTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        metric.Utilization(),
		CpuThroughput:         metric.Throughput(len(processDetails)),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               processDetails,
	}
	if rr, ok := sched.(*RoundRobinScheduler); ok {
		response.TimeQuantum = rr.Quantum
	}
	return response
}
