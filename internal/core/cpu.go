package core

// RunSegment is one contiguous CPU occupancy interval [Start, End).
// A zero-burst process produces Start == End.
type RunSegment struct {
	Process string `json:"process" yaml:"process"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
}

func (r RunSegment) Length() int { return r.End - r.Start }

// CpuMetric summarizes processor occupancy over a whole trace, in ticks.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives occupancy from a trace. The run starts at tick 0, so
// any time before the first dispatch counts as idle.
func MeasureCpu(trace []RunSegment) CpuMetric {
	var metric CpuMetric
	for _, seg := range trace {
		metric.UtilizationTime += seg.Length()
		if seg.End > metric.TotalTime {
			metric.TotalTime = seg.End
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy fraction of TotalTime, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per tick, 0 for an empty run.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
