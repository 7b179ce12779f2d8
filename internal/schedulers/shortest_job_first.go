package schedulers

import "os-scheduler/internal/core"

// ShortestJobFirst is non-preemptive: among arrived processes the shortest
// burst is dispatched, and it keeps the CPU even if a shorter job arrives.
type ShortestJobFirst struct{}

func (s *ShortestJobFirst) Policy() Policy { return SJF }

// A queued process has never run, so its remaining burst is its burst.
func (s *ShortestJobFirst) NewQueue() ReadyQueue {
	return newOrderedQueue(func(p core.Process) int { return p.BurstTime })
}

func (s *ShortestJobFirst) Preempt(_ int) bool { return false }
