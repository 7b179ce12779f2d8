package schedulers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"FCFS":        FCFS,
		"fcfs":        FCFS,
		"SJF":         SJF,
		"Round Robin": RoundRobin,
		"rr":          RoundRobin,
		"round-robin": RoundRobin,
		" Priority ":  Priority,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("mlfq")
	var verr *core.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestNewScheduler_Variants(t *testing.T) {
	for _, policy := range Policies {
		sched, err := NewScheduler(policy, 2)
		require.NoError(t, err)
		assert.Equal(t, policy, sched.Policy())
	}
}

func TestNewScheduler_RoundRobinNeedsPositiveQuantum(t *testing.T) {
	for _, q := range []int{0, -1} {
		_, err := NewScheduler(RoundRobin, q)
		var verr *core.ValidationError
		require.True(t, errors.As(err, &verr), "quantum %d", q)
		assert.Equal(t, "time_quantum", verr.Field)
	}
	// quantum is irrelevant for the other policies
	_, err := NewScheduler(FCFS, 0)
	assert.NoError(t, err)
}

func TestPreempt(t *testing.T) {
	rr := &RoundRobinScheduler{Quantum: 3}
	assert.False(t, rr.Preempt(2))
	assert.True(t, rr.Preempt(3))
	for _, s := range []Scheduler{&FirstComeFirstServe{}, &ShortestJobFirst{}, &PriorityScheduler{}} {
		assert.False(t, s.Preempt(1000))
	}
}
