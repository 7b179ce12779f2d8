package schedulers

// RoundRobinScheduler grants each dispatch at most Quantum ticks before the
// process rejoins the tail of the ready queue.
type RoundRobinScheduler struct {
	Quantum int
}

func (r *RoundRobinScheduler) Policy() Policy { return RoundRobin }

func (r *RoundRobinScheduler) NewQueue() ReadyQueue { return newFifoQueue() }

func (r *RoundRobinScheduler) Preempt(ranTicks int) bool {
	return ranTicks >= r.Quantum
}
