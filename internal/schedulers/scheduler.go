package schedulers

import (
	"strings"

	"os-scheduler/internal/core"
)

// Policy names a scheduling algorithm. The values are the labels the web
// form submits.
type Policy string

const (
	FCFS       Policy = "FCFS"
	SJF        Policy = "SJF"
	RoundRobin Policy = "Round Robin"
	Priority   Policy = "Priority"
)

// Policies lists every supported policy in display order.
var Policies = []Policy{FCFS, SJF, RoundRobin, Priority}

// ParsePolicy accepts the form labels and their lower-case aliases.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve":
		return FCFS, nil
	case "sjf", "shortest-job-first":
		return SJF, nil
	case "rr", "round robin", "round-robin":
		return RoundRobin, nil
	case "priority":
		return Priority, nil
	default:
		return "", core.NewValidationError("algorithm", "unknown scheduling algorithm %q", name)
	}
}

// Scheduler is the policy half of a simulation: how the ready queue is
// ordered and whether a running process must yield. The tick loop itself
// is shared by every policy.
type Scheduler interface {
	Policy() Policy
	NewQueue() ReadyQueue
	// Preempt reports whether a process that has run ranTicks consecutive
	// ticks without finishing goes back to the ready queue.
	Preempt(ranTicks int) bool
}

// NewScheduler builds the Scheduler for policy. quantum is only read for
// Round Robin, where it must be positive.
func NewScheduler(policy Policy, quantum int) (Scheduler, error) {
	switch policy {
	case FCFS:
		return &FirstComeFirstServe{}, nil
	case SJF:
		return &ShortestJobFirst{}, nil
	case RoundRobin:
		if quantum <= 0 {
			return nil, core.NewValidationError("time_quantum", "time quantum must be a positive integer (got %d)", quantum)
		}
		return &RoundRobinScheduler{Quantum: quantum}, nil
	case Priority:
		return &PriorityScheduler{}, nil
	default:
		return nil, core.NewValidationError("algorithm", "unknown scheduling algorithm %q", string(policy))
	}
}
