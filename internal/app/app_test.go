package app

import (
	"errors"
	"testing"
	"time"

	"github.com/microscalper/scdeploy/internal/config"
	"github.com/microscalper/scdeploy/internal/deploy"
	"github.com/microscalper/scdeploy/internal/models"
	"github.com/microscalper/scdeploy/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, dryRun bool) Model {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(config.DefaultConfig(), dryRun, "test")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func updateModel(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewStartsOnLoadingScreen(t *testing.T) {
	m := newTestModel(t, false)
	assert.Equal(t, ScreenLoading, m.screen)
}

func TestRepoLoadedMovesToConfirm(t *testing.T) {
	m := newTestModel(t, false)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")

	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})

	assert.Equal(t, ScreenConfirm, m.screen)
	assert.Equal(t, "micro-scalper", m.repoInfo.DisplayName)
}

func TestRepoLoadErrorMovesToErrorScreen(t *testing.T) {
	m := newTestModel(t, false)

	m, _ = updateModel(t, m, repoLoadedMsg{err: errors.New("no repo here")})

	assert.Equal(t, ScreenError, m.screen)
	assert.Contains(t, m.errorMessage, "no repo here")
}

func TestConfirmYesStartsDeploy(t *testing.T) {
	m := newTestModel(t, true)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})

	m, cmd := updateModel(t, m, keyMsg("y"))

	assert.Equal(t, ScreenRunning, m.screen)
	assert.NotNil(t, cmd)
	require.Len(t, m.steps, 4)
	for _, status := range m.stepStatus {
		assert.True(t, models.IsStatePending(status))
	}
}

func TestConfirmToggleAndDecline(t *testing.T) {
	m := newTestModel(t, true)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})

	m, _ = updateModel(t, m, keyMsg("tab"))
	assert.Equal(t, 1, m.confirmSelection)

	m, cmd := updateModel(t, m, keyMsg("enter"))
	assert.True(t, m.shouldQuit)
	assert.NotNil(t, cmd)
}

func TestDeployEventsUpdateStepStatus(t *testing.T) {
	m := newTestModel(t, true)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})
	m, _ = updateModel(t, m, keyMsg("y"))

	// Step 0 started
	m, _ = updateModel(t, m, deployEventMsg{event: deploy.Event{Step: 0, Kind: models.StepStatus}})
	assert.True(t, models.IsStateRunning(m.stepStatus[0]))

	// Step 0 finished cleanly; a dry run marks it Simulated, never Done
	result := models.StepResult{Kind: models.StepStatus, Output: "On branch main"}
	m, _ = updateModel(t, m, deployEventMsg{event: deploy.Event{Step: 0, Kind: models.StepStatus, Result: &result}})
	assert.True(t, models.IsStateSimulated(m.stepStatus[0]))
	assert.False(t, models.IsStateDone(m.stepStatus[0]))
	assert.Contains(t, m.outputTail, "On branch main")

	// Step 1 finished with a failure; the run keeps going
	failed := models.StepResult{Kind: models.StepStageAll, Failed: true, Err: "git exploded"}
	m, _ = updateModel(t, m, deployEventMsg{event: deploy.Event{Step: 1, Kind: models.StepStageAll, Result: &failed}})
	assert.True(t, models.IsStateFailed(m.stepStatus[1]))
	assert.Equal(t, ScreenRunning, m.screen)
}

func TestDeployEventsMarkRealRunStepsDone(t *testing.T) {
	m := newTestModel(t, false)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})
	m, _ = updateModel(t, m, keyMsg("y"))

	result := models.StepResult{Kind: models.StepStatus, Output: "On branch main"}
	m, _ = updateModel(t, m, deployEventMsg{event: deploy.Event{Step: 0, Kind: models.StepStatus, Result: &result}})

	assert.True(t, models.IsStateDone(m.stepStatus[0]))
	assert.False(t, models.IsStateSimulated(m.stepStatus[0]))
}

func TestDeployDoneMovesToCompleteAndRecordsHistory(t *testing.T) {
	m := newTestModel(t, true)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})
	m, _ = updateModel(t, m, keyMsg("y"))

	summary := models.RunSummary{
		Results: []models.StepResult{
			{Kind: models.StepStatus},
			{Kind: models.StepStageAll},
			{Kind: models.StepCommit, Failed: true, Err: "nothing to commit"},
			{Kind: models.StepPush},
		},
		HeadCommit: "abc1234",
		FinishedAt: time.Now(),
		DryRun:     true,
	}
	m, _ = updateModel(t, m, deployDoneMsg{summary: summary})

	assert.Equal(t, ScreenComplete, m.screen)
	require.NotNil(t, m.summary)
	assert.Equal(t, 1, m.summary.FailedCount())
	require.NotEmpty(t, m.history)
	assert.Equal(t, "abc1234", m.history[0].HeadCommit)

	// Any key on the complete screen exits
	m, cmd := updateModel(t, m, keyMsg("x"))
	assert.True(t, m.shouldQuit)
	assert.NotNil(t, cmd)
}

func TestConfirmShowsDetectedMainBranch(t *testing.T) {
	m := newTestModel(t, false)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main").
		WithCurrentBranch("main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})

	assert.Contains(t, m.renderConfirm(), "Main:")

	// A repo living on master gets flagged; the push target never moves
	legacy := models.NewRepoInfo("/tmp/legacy", "legacy", "master").
		WithCurrentBranch("master")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &legacy})

	view := m.renderConfirm()
	assert.Contains(t, view, "master")
	assert.Contains(t, view, "push still targets main")
}

func TestRepoLoadErrorWaitsForUpdatePrompt(t *testing.T) {
	m := newTestModel(t, false)

	m, _ = updateModel(t, m, updateCheckResult{release: &update.Release{TagName: "v9.9.9"}})
	require.Equal(t, ScreenUpdatePrompt, m.screen)

	// The error must not steal the prompt
	m, _ = updateModel(t, m, repoLoadedMsg{err: errors.New("no repo here")})
	assert.Equal(t, ScreenUpdatePrompt, m.screen)

	// Dismissing the prompt lands on the deferred error
	m, _ = updateModel(t, m, keyMsg("esc"))
	assert.Equal(t, ScreenError, m.screen)
	assert.Contains(t, m.errorMessage, "no repo here")
}

func TestUpdatePromptFlow(t *testing.T) {
	m := newTestModel(t, false)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})

	m, _ = updateModel(t, m, updateCheckResult{release: &update.Release{TagName: "v9.9.9"}})
	assert.Equal(t, ScreenUpdatePrompt, m.screen)

	// "Skip this version" remembers the tag
	m, _ = updateModel(t, m, keyMsg("down"))
	m, _ = updateModel(t, m, keyMsg("down"))
	m, _ = updateModel(t, m, keyMsg("enter"))

	assert.Equal(t, ScreenConfirm, m.screen)
	assert.Equal(t, "v9.9.9", m.config.Update.SkippedVersion)

	// A skipped version never prompts again
	m, _ = updateModel(t, m, updateCheckResult{release: &update.Release{TagName: "v9.9.9"}})
	assert.Equal(t, ScreenConfirm, m.screen)
}

func TestHistoryScreenRoundTrip(t *testing.T) {
	m := newTestModel(t, false)
	repo := models.NewRepoInfo("/tmp/micro-scalper", "micro-scalper", "main")
	m, _ = updateModel(t, m, repoLoadedMsg{repo: &repo})

	m, _ = updateModel(t, m, keyMsg("h"))
	assert.Equal(t, ScreenHistory, m.screen)

	m, _ = updateModel(t, m, keyMsg("esc"))
	assert.Equal(t, ScreenConfirm, m.screen)
}
