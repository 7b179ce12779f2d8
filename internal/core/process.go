package core

import "strings"

// Process is one job of the mix. Index is its position in the input and is
// the last tie-breaker of every ready queue ordering.
type Process struct {
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority,omitempty" yaml:"priority,omitempty"`
	Index       int    `json:"-" yaml:"-"`
}

// ProcessSet is the validated, read-only job mix of one run.
type ProcessSet struct {
	processes     []Process
	byName        map[string]int
	hasPriorities bool
}

// NewProcessSet builds a ProcessSet from parallel sequences. priorities may
// be nil; when given it must match the other lengths.
func NewProcessSet(names []string, arrivals, bursts, priorities []int) (*ProcessSet, error) {
	if len(names) == 0 {
		return nil, NewValidationError("processes", "at least one process is required")
	}
	if len(names) != len(bursts) || len(names) != len(arrivals) {
		return nil, NewValidationError("processes", "the number of processes (%d), burst times (%d), and arrival times (%d) must match",
			len(names), len(bursts), len(arrivals))
	}
	if priorities != nil && len(priorities) != len(names) {
		return nil, NewValidationError("priorities", "number of priorities (%d) must match number of processes (%d)",
			len(priorities), len(names))
	}

	set := &ProcessSet{
		processes:     make([]Process, 0, len(names)),
		byName:        make(map[string]int, len(names)),
		hasPriorities: priorities != nil,
	}
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, NewValidationError("processes", "process %d has a blank name", i+1)
		}
		if _, dup := set.byName[name]; dup {
			return nil, NewValidationError("processes", "duplicate process name %q", name)
		}
		if arrivals[i] < 0 {
			return nil, NewValidationError("arrival_times", "arrival time of %q must not be negative (got %d)", name, arrivals[i])
		}
		if bursts[i] < 0 {
			return nil, NewValidationError("burst_times", "burst time of %q must not be negative (got %d)", name, bursts[i])
		}
		p := Process{Name: name, ArrivalTime: arrivals[i], BurstTime: bursts[i], Index: i}
		if priorities != nil {
			p.Priority = priorities[i]
		}
		set.byName[name] = i
		set.processes = append(set.processes, p)
	}
	return set, nil
}

// RequirePriorities fails when the set was built without priorities.
func (s *ProcessSet) RequirePriorities() error {
	if !s.hasPriorities {
		return NewValidationError("priorities", "priorities are required for Priority scheduling")
	}
	return nil
}

// HasPriorities reports whether priorities were supplied.
func (s *ProcessSet) HasPriorities() bool { return s.hasPriorities }

func (s *ProcessSet) Len() int { return len(s.processes) }

// Processes returns a copy of the processes in input order.
func (s *ProcessSet) Processes() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// At returns the process at input position i.
func (s *ProcessSet) At(i int) Process { return s.processes[i] }

// Get looks a process up by name.
func (s *ProcessSet) Get(name string) (Process, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Process{}, false
	}
	return s.processes[i], true
}
