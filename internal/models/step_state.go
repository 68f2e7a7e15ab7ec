package models

// StepState represents the display state of a step on the Running screen
type StepState interface {
	isStepState()
}

type stepStatePending struct{}
type stepStateRunning struct{}
type stepStateDone struct{}
type stepStateSimulated struct{}
type stepStateFailed struct{ Reason string }

func (stepStatePending) isStepState() {}
func (stepStateRunning) isStepState() {}
func (stepStateDone) isStepState() {}
func (stepStateSimulated) isStepState() {}
func (stepStateFailed) isStepState() {}

// StepState variants
var (
	// Pending indicates the step has not started yet
	Pending StepState = stepStatePending{}
	// Running indicates the step is executing now
	Running StepState = stepStateRunning{}
	// Done indicates the step finished cleanly
	Done StepState = stepStateDone{}
	// Simulated indicates the step finished in a dry run without touching
	// the repository
	Simulated StepState = stepStateSimulated{}
)

// StateFailed creates a StepState for a step whose git command failed
func StateFailed(reason string) StepState {
	return stepStateFailed{Reason: reason}
}

// IsStatePending returns true if status is Pending
func IsStatePending(s StepState) bool {
	_, ok := s.(stepStatePending)
	return ok
}

// IsStateRunning returns true if status is Running
func IsStateRunning(s StepState) bool {
	_, ok := s.(stepStateRunning)
	return ok
}

// IsStateDone returns true if status is Done
func IsStateDone(s StepState) bool {
	_, ok := s.(stepStateDone)
	return ok
}

// IsStateSimulated returns true if status is Simulated
func IsStateSimulated(s StepState) bool {
	_, ok := s.(stepStateSimulated)
	return ok
}

// IsStateFailed returns true if status is Failed
func IsStateFailed(s StepState) bool {
	_, ok := s.(stepStateFailed)
	return ok
}

// GetStateReason returns the reason string for a Failed status
func GetStateReason(s StepState) string {
	if failed, ok := s.(stepStateFailed); ok {
		return failed.Reason
	}
	return ""
}
