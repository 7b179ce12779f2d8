package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessSet(t *testing.T) {
	set, err := NewProcessSet([]string{" A", "B "}, []int{0, 2}, []int{3, 0}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.HasPriorities())
	assert.NoError(t, set.RequirePriorities())

	b, ok := set.Get("B")
	require.True(t, ok)
	assert.Equal(t, Process{Name: "B", ArrivalTime: 2, BurstTime: 0, Priority: 2, Index: 1}, b)
	assert.Equal(t, "A", set.At(0).Name)

	_, ok = set.Get("missing")
	assert.False(t, ok)
}

func TestProcessSet_ProcessesIsACopy(t *testing.T) {
	set, err := NewProcessSet([]string{"A"}, []int{0}, []int{3}, nil)
	require.NoError(t, err)
	procs := set.Processes()
	procs[0].BurstTime = 99
	assert.Equal(t, 3, set.At(0).BurstTime)
}

func TestNewProcessSet_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		names      []string
		arrivals   []int
		bursts     []int
		priorities []int
		field      string
	}{
		{"empty", nil, nil, nil, nil, "processes"},
		{"burst length", []string{"A", "B"}, []int{0, 0}, []int{1}, nil, "processes"},
		{"arrival length", []string{"A"}, []int{0, 1}, []int{1}, nil, "processes"},
		{"priority length", []string{"A", "B"}, []int{0, 0}, []int{1, 1}, []int{1}, "priorities"},
		{"blank name", []string{"A", "  "}, []int{0, 0}, []int{1, 1}, nil, "processes"},
		{"duplicate name", []string{"A", "A"}, []int{0, 0}, []int{1, 1}, nil, "processes"},
		{"negative arrival", []string{"A"}, []int{-1}, []int{1}, nil, "arrival_times"},
		{"negative burst", []string{"A"}, []int{0}, []int{-2}, nil, "burst_times"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProcessSet(tc.names, tc.arrivals, tc.bursts, tc.priorities)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRequirePriorities(t *testing.T) {
	set, err := NewProcessSet([]string{"A"}, []int{0}, []int{1}, nil)
	require.NoError(t, err)
	err = set.RequirePriorities()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "priorities: priorities are required for Priority scheduling", err.Error())
}
