package schedulers

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// Schedule validates request, simulates it under policy and returns the
// trace with its statistics. defaultQuantum is used for Round Robin when
// the request has no quantum of its own.
func Schedule(request requests.ScheduleRequest, policy Policy, defaultQuantum int) (responses.ScheduleResponse, error) {
	set, err := request.ProcessSet()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	sched, err := NewScheduler(policy, request.Quantum(defaultQuantum))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedule(set, sched)
}

func schedule(set *core.ProcessSet, sched Scheduler) (responses.ScheduleResponse, error) {
	runId := "run_" + uuid.New().String()
	log := logrus.WithFields(logrus.Fields{"run": runId, "policy": sched.Policy()})
	log.Infof("simulating %d processes", set.Len())

	trace, err := Run(set, sched)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	details, err := CalculateStats(set, trace)
	if err != nil {
		log.WithError(err).Error("statistics rejected the trace")
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(sched, trace, details)
	response.RunId = runId
	log.Debugf("response is: %+v", response)
	return response, nil
}

// ScheduleAll runs every applicable policy on the same input concurrently.
// Priority is skipped when the request carries no priorities. Results keep
// the order of Policies.
func ScheduleAll(request requests.ScheduleRequest, defaultQuantum int) (responses.ComparisonResponse, error) {
	set, err := request.ProcessSet()
	if err != nil {
		return responses.ComparisonResponse{}, err
	}

	scheds := make([]Scheduler, 0, len(Policies))
	for _, policy := range Policies {
		if policy == Priority && !set.HasPriorities() {
			continue
		}
		sched, err := NewScheduler(policy, request.Quantum(defaultQuantum))
		if err != nil {
			return responses.ComparisonResponse{}, err
		}
		scheds = append(scheds, sched)
	}

	results := make([]responses.ScheduleResponse, len(scheds))
	errs := make([]error, len(scheds))
	var wg sync.WaitGroup
	wg.Add(len(scheds))
	// runs share only the read-only process set
	for i, sched := range scheds {
		go func(i int, sched Scheduler) {
			defer wg.Done()
			results[i], errs[i] = schedule(set, sched)
		}(i, sched)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return responses.ComparisonResponse{}, err
		}
	}
	return responses.ComparisonResponse{Results: results}, nil
}
