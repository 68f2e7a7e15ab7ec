package models

import "time"

// RunSummary is the outcome of one full deploy run. The closing banner text
// is fixed: it does not depend on whether any step failed, only the per-step
// results record what actually happened.
type RunSummary struct {
	// Results for each step, in execution order
	Results []StepResult
	// HeadCommit short hash after the run, empty if it could not be read
	HeadCommit string
	// FinishedAt is when the last step completed
	FinishedAt time.Time
	// DryRun marks a simulated run
	DryRun bool
}

// FailedCount returns how many steps recorded a git failure
func (s RunSummary) FailedCount() int {
	count := 0
	for _, r := range s.Results {
		if r.Failed {
			count++
		}
	}
	return count
}
