package schedulers

import "os-scheduler/internal/core"

// PriorityScheduler is non-preemptive; a lower number is a higher priority.
type PriorityScheduler struct{}

func (p *PriorityScheduler) Policy() Policy { return Priority }

func (p *PriorityScheduler) NewQueue() ReadyQueue {
	return newOrderedQueue(func(proc core.Process) int { return proc.Priority })
}

func (p *PriorityScheduler) Preempt(_ int) bool { return false }
