package deploy

import (
	"time"

	"github.com/microscalper/scdeploy/internal/models"
)

// GitClient is the subset of git operations the sequence needs. The real
// implementation shells out to the git binary; tests substitute a recorder.
type GitClient interface {
	Status() (string, error)
	StageAll() (string, error)
	Commit(message string) (string, error)
	Push(remote, branch string) (string, error)
	HeadShort() (string, error)
}

// Event reports progress of a run. Result is nil when the step has just
// started and non-nil when it finished.
type Event struct {
	Step   int
	Kind   models.StepKind
	Result *models.StepResult
}

// Runner executes the deploy sequence against a GitClient
type Runner struct {
	client GitClient
	dryRun bool
}

// NewRunner creates a Runner
func NewRunner(client GitClient, dryRun bool) *Runner {
	return &Runner{client: client, dryRun: dryRun}
}

// Steps returns the fixed step order
func (r *Runner) Steps() []models.StepKind {
	return []models.StepKind{
		models.StepStatus,
		models.StepStageAll,
		models.StepCommit,
		models.StepPush,
	}
}

// Run executes every step in order, exactly once, regardless of individual
// failures. onEvent, if non-nil, receives a started and a finished event per
// step. The returned summary always carries the full result list; the caller
// renders the same closing banner either way.
func (r *Runner) Run(onEvent func(Event)) models.RunSummary {
	steps := r.Steps()
	results := make([]models.StepResult, 0, len(steps))

	for i, kind := range steps {
		if onEvent != nil {
			onEvent(Event{Step: i, Kind: kind})
		}

		result := r.runStep(kind)
		results = append(results, result)

		if onEvent != nil {
			res := result
			onEvent(Event{Step: i, Kind: kind, Result: &res})
		}
	}

	summary := models.RunSummary{
		Results:    results,
		FinishedAt: time.Now(),
		DryRun:     r.dryRun,
	}
	if head, err := r.client.HeadShort(); err == nil {
		summary.HeadCommit = head
	}

	return summary
}

func (r *Runner) runStep(kind models.StepKind) models.StepResult {
	start := time.Now()

	var output string
	var err error

	switch kind {
	case models.StepStatus:
		output, err = r.client.Status()
	case models.StepStageAll:
		output, err = r.client.StageAll()
	case models.StepCommit:
		output, err = r.client.Commit(CommitMessage)
	case models.StepPush:
		output, err = r.client.Push(Remote, Branch)
	}

	result := models.StepResult{
		Kind:     kind,
		Output:   output,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Failed = true
		result.Err = err.Error()
	}

	return result
}
