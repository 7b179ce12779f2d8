package responses

import "os-scheduler/internal/core"

// ProcessResponse holds the per-process statistics of one run, in ticks.
type ProcessResponse struct {
	ProcessId      string `json:"process" yaml:"process"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	StartTime      int    `json:"start_time" yaml:"start_time"`
	FinishTime     int    `json:"finish_time" yaml:"finish_time"`
	TurnAroundTime int    `json:"turnaround_time" yaml:"turnaround_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id" yaml:"run_id"`
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	GanttChart            []core.RunSegment `json:"gantt_chart" yaml:"gantt_chart"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	BusyTime              int               `json:"busy_time" yaml:"busy_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turnaround_time" yaml:"average_turnaround_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

// ComparisonResponse carries one ScheduleResponse per policy run on the
// same input.
type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results" yaml:"results"`
}
