package models

import "time"

// StepKind identifies one step of the deploy sequence
type StepKind int

const (
	// StepStatus shows the working tree state
	StepStatus StepKind = iota
	// StepStageAll stages every pending change
	StepStageAll
	// StepCommit commits with the fixed deploy message
	StepCommit
	// StepPush pushes to the fixed remote and branch
	StepPush
)

// Display returns a short label for this step
func (k StepKind) Display() string {
	switch k {
	case StepStatus:
		return "Check status"
	case StepStageAll:
		return "Stage all changes"
	case StepCommit:
		return "Commit"
	case StepPush:
		return "Push to origin/main"
	default:
		return ""
	}
}

// Command returns the git invocation this step maps to, for display
func (k StepKind) Command() string {
	switch k {
	case StepStatus:
		return "git status"
	case StepStageAll:
		return "git add --all"
	case StepCommit:
		return "git commit -m <message>"
	case StepPush:
		return "git push origin main"
	default:
		return ""
	}
}

// StepResult records what a single step produced. A failed step does not
// stop the sequence; the failure is only recorded here.
type StepResult struct {
	Kind     StepKind
	Output   string
	Err      string // git's own error text, empty on success
	Failed   bool
	Duration time.Duration
}
