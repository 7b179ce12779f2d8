package schedulers

// FirstComeFirstServe runs processes to completion in arrival order.
type FirstComeFirstServe struct{}

func (f *FirstComeFirstServe) Policy() Policy { return FCFS }

func (f *FirstComeFirstServe) NewQueue() ReadyQueue { return newFifoQueue() }

func (f *FirstComeFirstServe) Preempt(_ int) bool { return false }
