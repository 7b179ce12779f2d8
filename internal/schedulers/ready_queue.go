package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

// ReadyQueue holds the arrived-but-not-finished processes that are not on
// the CPU. Only the simulator tick mutates it.
type ReadyQueue interface {
	// Admit enqueues a process that arrived at tick at.
	Admit(p core.Process, at int)
	// Requeue puts a preempted process back at tick at.
	Requeue(p core.Process, at int)
	IsEmpty() bool
	Len() int
	// SelectNext removes and returns the next process to dispatch.
	// It must not be called on an empty queue.
	SelectNext() string
	// Snapshot lists queued names in dispatch order.
	Snapshot() []string
	Clone() ReadyQueue
}

type queueEntry struct {
	process core.Process
	joined  int
}

// fifoQueue dispatches in join order. Admissions inside a tick happen in
// input order, which gives arrival-then-input-order for FCFS and RR.
type fifoQueue struct {
	entries []queueEntry
}

func newFifoQueue() *fifoQueue {
	return &fifoQueue{entries: make([]queueEntry, 0)}
}

func (q *fifoQueue) Admit(p core.Process, at int) {
	q.entries = append(q.entries, queueEntry{process: p, joined: at})
}

func (q *fifoQueue) Requeue(p core.Process, at int) {
	q.Admit(p, at)
}

func (q *fifoQueue) IsEmpty() bool { return len(q.entries) == 0 }

func (q *fifoQueue) Len() int { return len(q.entries) }

func (q *fifoQueue) SelectNext() string {
	next := q.entries[0]
	q.entries = q.entries[1:]
	return next.process.Name
}

func (q *fifoQueue) Snapshot() []string {
	names := make([]string, len(q.entries))
	for i, e := range q.entries {
		names[i] = e.process.Name
	}
	return names
}

func (q *fifoQueue) Clone() ReadyQueue {
	entries := make([]queueEntry, len(q.entries))
	copy(entries, q.entries)
	return &fifoQueue{entries: entries}
}

// orderedQueue dispatches the entry with the smallest key. Ties fall back
// to arrival tick and then input order.
type orderedQueue struct {
	key     func(core.Process) int
	entries []queueEntry
}

func newOrderedQueue(key func(core.Process) int) *orderedQueue {
	return &orderedQueue{key: key, entries: make([]queueEntry, 0)}
}

func (q *orderedQueue) Admit(p core.Process, at int) {
	q.entries = append(q.entries, queueEntry{process: p, joined: at})
	q.order()
}

func (q *orderedQueue) Requeue(p core.Process, at int) {
	q.Admit(p, at)
}

func (q *orderedQueue) order() {
	sort.SliceStable(q.entries, func(i, j int) bool {
		pi, pj := q.entries[i].process, q.entries[j].process
		if ki, kj := q.key(pi), q.key(pj); ki != kj {
			return ki < kj
		}
		if pi.ArrivalTime != pj.ArrivalTime {
			return pi.ArrivalTime < pj.ArrivalTime
		}
		return pi.Index < pj.Index
	})
}

func (q *orderedQueue) IsEmpty() bool { return len(q.entries) == 0 }

func (q *orderedQueue) Len() int { return len(q.entries) }

func (q *orderedQueue) SelectNext() string {
	next := q.entries[0]
	q.entries = q.entries[1:]
	return next.process.Name
}

func (q *orderedQueue) Snapshot() []string {
	names := make([]string, len(q.entries))
	for i, e := range q.entries {
		names[i] = e.process.Name
	}
	return names
}

func (q *orderedQueue) Clone() ReadyQueue {
	entries := make([]queueEntry, len(q.entries))
	copy(entries, q.entries)
	return &orderedQueue{key: q.key, entries: entries}
}
