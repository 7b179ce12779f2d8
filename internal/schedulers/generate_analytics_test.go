package schedulers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func TestCalculateStats_UsesLastSegment(t *testing.T) {
	set := mustSet(t, []string{"A", "B"}, []int{0, 0}, []int{5, 3}, nil)
	trace := []core.RunSegment{seg("A", 0, 2), seg("B", 2, 4), seg("A", 4, 6), seg("B", 6, 7), seg("A", 7, 8)}

	details, err := CalculateStats(set, trace)
	require.NoError(t, err)
	require.Len(t, details, 2)

	a := details[0]
	assert.Equal(t, "A", a.ProcessId)
	assert.Equal(t, 0, a.StartTime)
	assert.Equal(t, 8, a.FinishTime)
	assert.Equal(t, 8, a.TurnAroundTime)
	assert.Equal(t, 3, a.WaitingTime)
	assert.Equal(t, 0, a.ResponseTime)

	b := details[1]
	assert.Equal(t, 7, b.FinishTime)
	assert.Equal(t, 4, b.WaitingTime)
	assert.Equal(t, 2, b.ResponseTime)
}

func TestCalculateStats_IncompleteTrace(t *testing.T) {
	set := mustSet(t, []string{"A", "B"}, []int{0, 0}, []int{1, 1}, nil)
	_, err := CalculateStats(set, []core.RunSegment{seg("A", 0, 1)})

	var incomplete *core.IncompleteTraceError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, "B", incomplete.Process)
}

func TestCalculateStats_RejectsImpossibleTrace(t *testing.T) {
	set := mustSet(t, []string{"A"}, []int{0}, []int{4}, nil)
	_, err := CalculateStats(set, []core.RunSegment{seg("A", 0, 2)})
	assert.Error(t, err)
}

func TestGenerateResponse_CpuFigures(t *testing.T) {
	set := mustSet(t, []string{"A", "B"}, []int{2, 4}, []int{1, 1}, nil)
	sched := mustScheduler(t, RoundRobin, 3)
	trace, err := Run(set, sched)
	require.NoError(t, err)
	details, err := CalculateStats(set, trace)
	require.NoError(t, err)

	response := generateResponse(sched, trace, details)
	assert.Equal(t, "Round Robin", response.Algorithm)
	assert.Equal(t, 3, response.TimeQuantum)
	assert.Equal(t, 5, response.TotalTime)
	assert.Equal(t, 2, response.BusyTime)
	assert.Equal(t, 3, response.IdleTime)
	assert.InDelta(t, 0.4, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 0.4, response.CpuThroughput, 1e-9)
	assert.Zero(t, response.AverageWaitingTime)
	assert.InDelta(t, 1.0, response.AverageTurnAroundTime, 1e-9)
}
