package schedulers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func mustSet(t *testing.T, names []string, arrivals, bursts, priorities []int) *core.ProcessSet {
	t.Helper()
	set, err := core.NewProcessSet(names, arrivals, bursts, priorities)
	require.NoError(t, err)
	return set
}

func mustScheduler(t *testing.T, policy Policy, quantum int) Scheduler {
	t.Helper()
	sched, err := NewScheduler(policy, quantum)
	require.NoError(t, err)
	return sched
}

func seg(name string, start, end int) core.RunSegment {
	return core.RunSegment{Process: name, Start: start, End: end}
}
