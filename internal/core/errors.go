package core

import "fmt"

// ValidationError reports input that cannot be simulated. It is returned
// before any tick runs, so a run is never partially computed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IncompleteTraceError means a process never got a run segment. A correct
// scheduler cannot produce this.
type IncompleteTraceError struct {
	Process string
}

func (e *IncompleteTraceError) Error() string {
	return fmt.Sprintf("trace is incomplete: process %q never ran", e.Process)
}
