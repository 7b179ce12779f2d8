package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
	"os-scheduler/internal/replay"
)

// State is everything one simulation run knows at a given clock value.
// Tick never mutates the State it is given; it returns the next one.
type State struct {
	Clock int
	// Running is the process on the CPU, "" when idle.
	Running string
	// RanTicks counts consecutive ticks of the current dispatch.
	RanTicks     int
	SegmentStart int
	Remaining    map[string]int
	Queue        ReadyQueue
	Admitted     map[string]bool
	Completed    map[string]bool
	Trace        []core.RunSegment
}

// NewState returns the state at clock 0, before any process is admitted.
func NewState(set *core.ProcessSet, sched Scheduler) State {
	st := State{
		Remaining: make(map[string]int, set.Len()),
		Queue:     sched.NewQueue(),
		Admitted:  make(map[string]bool, set.Len()),
		Completed: make(map[string]bool, set.Len()),
		Trace:     make([]core.RunSegment, 0),
	}
	for _, p := range set.Processes() {
		st.Remaining[p.Name] = p.BurstTime
	}
	return st
}

// Done reports whether every process of set has completed.
func (st State) Done(set *core.ProcessSet) bool {
	return len(st.Completed) == set.Len()
}

func (st State) clone() State {
	next := st
	next.Remaining = make(map[string]int, len(st.Remaining))
	for k, v := range st.Remaining {
		next.Remaining[k] = v
	}
	next.Admitted = make(map[string]bool, len(st.Admitted))
	for k := range st.Admitted {
		next.Admitted[k] = true
	}
	next.Completed = make(map[string]bool, len(st.Completed))
	for k := range st.Completed {
		next.Completed[k] = true
	}
	next.Queue = st.Queue.Clone()
	next.Trace = append(make([]core.RunSegment, 0, len(st.Trace)+1), st.Trace...)
	return next
}

// admit enqueues, in input order, every process arriving at tick at.
func (st *State) admit(set *core.ProcessSet, at int) {
	for i := 0; i < set.Len(); i++ {
		p := set.At(i)
		if p.ArrivalTime == at && !st.Admitted[p.Name] {
			st.Admitted[p.Name] = true
			st.Queue.Admit(p, at)
		}
	}
}

func (st *State) closeSegment(end int) {
	st.Trace = append(st.Trace, core.RunSegment{Process: st.Running, Start: st.SegmentStart, End: end})
	st.Running = ""
	st.RanTicks = 0
}

// Tick advances the simulation by exactly one unit of time.
func Tick(set *core.ProcessSet, sched Scheduler, st State) State {
	next := st.clone()
	log := logrus.WithFields(logrus.Fields{"policy": sched.Policy(), "clock": next.Clock})

	next.admit(set, next.Clock)

	// A zero-burst process completes on dispatch, which frees the CPU for
	// the next candidate within the same tick.
	for next.Running == "" && !next.Queue.IsEmpty() {
		name := next.Queue.SelectNext()
		next.Running = name
		next.SegmentStart = next.Clock
		next.RanTicks = 0
		log.Debugf("dispatch %s (remaining %d)", name, next.Remaining[name])
		if next.Remaining[name] == 0 {
			next.closeSegment(next.Clock)
			next.Completed[name] = true
			log.Debugf("%s completed on dispatch", name)
		}
	}

	if next.Running != "" {
		name := next.Running
		next.Remaining[name]--
		next.RanTicks++
		end := next.Clock + 1
		switch {
		case next.Remaining[name] == 0:
			next.closeSegment(end)
			next.Completed[name] = true
			log.Debugf("%s completed at %d", name, end)
		case sched.Preempt(next.RanTicks):
			next.closeSegment(end)
			// arrivals due at the expiry tick join ahead of the preempted process
			next.admit(set, end)
			p, _ := set.Get(name)
			next.Queue.Requeue(p, end)
			log.Debugf("%s preempted at %d (remaining %d)", name, end, next.Remaining[name])
		}
	} else {
		log.Trace("cpu idle")
	}

	next.Clock++
	return next
}

// horizon bounds the number of ticks any correct run can take.
func horizon(set *core.ProcessSet) int {
	latest, total := 0, 0
	for _, p := range set.Processes() {
		total += p.BurstTime
		if p.ArrivalTime > latest {
			latest = p.ArrivalTime
		}
	}
	return latest + total + 1
}

func checkRunnable(set *core.ProcessSet, sched Scheduler) error {
	if sched.Policy() == Priority {
		return set.RequirePriorities()
	}
	return nil
}

func unfinished(set *core.ProcessSet, st State) error {
	for _, p := range set.Processes() {
		if !st.Completed[p.Name] {
			return &core.IncompleteTraceError{Process: p.Name}
		}
	}
	return nil
}

// Run ticks from clock 0 until every process has completed and returns the
// Gantt trace.
func Run(set *core.ProcessSet, sched Scheduler) ([]core.RunSegment, error) {
	if err := checkRunnable(set, sched); err != nil {
		return nil, err
	}
	limit := horizon(set)
	st := NewState(set, sched)
	for !st.Done(set) {
		if st.Clock > limit {
			return nil, unfinished(set, st)
		}
		st = Tick(set, sched, st)
	}
	logrus.WithFields(logrus.Fields{
		"policy":   sched.Policy(),
		"ticks":    st.Clock,
		"segments": len(st.Trace),
	}).Debug("simulation finished")
	return st.Trace, nil
}

// Frames runs the simulation like Run and records the state after every
// tick, for consumers that animate a run step by step.
func Frames(set *core.ProcessSet, sched Scheduler) ([]replay.Frame, error) {
	if err := checkRunnable(set, sched); err != nil {
		return nil, err
	}
	limit := horizon(set)
	st := NewState(set, sched)
	frames := make([]replay.Frame, 0)
	for !st.Done(set) {
		if st.Clock > limit {
			return nil, unfinished(set, st)
		}
		st = Tick(set, sched, st)
		frames = append(frames, snapshot(set, st))
	}
	return frames, nil
}

func snapshot(set *core.ProcessSet, st State) replay.Frame {
	frame := replay.Frame{
		Clock:     st.Clock,
		Running:   st.Running,
		Queue:     st.Queue.Snapshot(),
		Remaining: make(map[string]int, len(st.Remaining)),
		Completed: make([]string, 0, len(st.Completed)),
		Segments:  append([]core.RunSegment(nil), st.Trace...),
	}
	for k, v := range st.Remaining {
		frame.Remaining[k] = v
	}
	for _, p := range set.Processes() {
		if st.Completed[p.Name] {
			frame.Completed = append(frame.Completed, p.Name)
		}
	}
	return frame
}
