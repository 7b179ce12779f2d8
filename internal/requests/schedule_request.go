package requests

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
)

// ScheduleRequest is one simulation submission. The same shape is read
// from JSON bodies and from YAML or JSON process files.
type ScheduleRequest struct {
	Processes    []string `json:"processes" yaml:"processes"`
	ArrivalTimes []int    `json:"arrival_times" yaml:"arrival_times"`
	BurstTimes   []int    `json:"burst_times" yaml:"burst_times"`
	Priorities   []int    `json:"priorities,omitempty" yaml:"priorities,omitempty"`
	Algorithm    string   `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	TimeQuantum  *int     `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// FormRequest mirrors the HTML form, where every list is a single
// comma-separated field.
type FormRequest struct {
	Process     string `form:"process"`
	BurstTime   string `form:"burst_time"`
	ArrivalTime string `form:"arrival_time"`
	Priority    string `form:"priority"`
	Algorithm   string `form:"algorithm"`
	TimeQuantum string `form:"time_quantum"`
}

// ToScheduleRequest parses the comma-separated fields.
func (f FormRequest) ToScheduleRequest() (ScheduleRequest, error) {
	var (
		req ScheduleRequest
		err error
	)
	req.Processes = ParseList(f.Process)
	if req.BurstTimes, err = ParseIntList("burst_time", f.BurstTime); err != nil {
		return req, err
	}
	if req.ArrivalTimes, err = ParseIntList("arrival_time", f.ArrivalTime); err != nil {
		return req, err
	}
	if strings.TrimSpace(f.Priority) != "" {
		if req.Priorities, err = ParseIntList("priority", f.Priority); err != nil {
			return req, err
		}
	}
	req.Algorithm = strings.TrimSpace(f.Algorithm)
	if q := strings.TrimSpace(f.TimeQuantum); q != "" {
		quantum, err := strconv.Atoi(q)
		if err != nil {
			return req, core.NewValidationError("time_quantum", "time quantum must be an integer, got %q", q)
		}
		req.TimeQuantum = &quantum
	}
	return req, nil
}

// ParseList splits a comma-separated field, trimming each item. A blank
// field yields an empty list.
func ParseList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return []string{}
	}
	parts := strings.Split(field, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseIntList parses a comma-separated list of integers.
func ParseIntList(name, field string) ([]int, error) {
	items := ParseList(field)
	values := make([]int, len(items))
	for i, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, core.NewValidationError(name, "item %d is not an integer: %q", i+1, item)
		}
		values[i] = v
	}
	return values, nil
}

// LoadFile reads a request from a YAML or JSON file.
func LoadFile(path string) (ScheduleRequest, error) {
	var req ScheduleRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, core.NewValidationError("file", "cannot parse %s: %v", path, err)
	}
	return req, nil
}

// ProcessSet validates the lists and builds the job mix.
func (r ScheduleRequest) ProcessSet() (*core.ProcessSet, error) {
	var priorities []int
	if len(r.Priorities) > 0 {
		priorities = r.Priorities
	}
	return core.NewProcessSet(r.Processes, r.ArrivalTimes, r.BurstTimes, priorities)
}

// Quantum returns the requested time quantum, or fallback when the request
// does not carry one.
func (r ScheduleRequest) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}
