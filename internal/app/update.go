package app

import (
	"strings"

	"github.com/microscalper/scdeploy/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

const outputTailLines = 8

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case repoLoadedMsg:
		return m.handleRepoLoaded(msg)

	case deployEventMsg:
		return m.handleDeployEvent(msg)

	case deployDoneMsg:
		return m.handleDeployDone(msg)

	case updateCheckResult:
		return m.handleUpdateCheckResult(msg)

	case updateDownloadResult:
		return m.handleUpdateDownloadResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenConfirm:
		return m.handleConfirmKey(msg)
	case ScreenComplete:
		// The run is over; any key ends the program
		m.shouldQuit = true
		return m, tea.Quit
	case ScreenError:
		m.shouldQuit = true
		return m, tea.Quit
	case ScreenHistory:
		return m.handleHistoryKey(msg)
	case ScreenUpdatePrompt:
		return m.handleUpdatePromptKey(msg)
	}

	// Loading, Running, Updating: only ctrl+c is honored
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "n", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.confirmSelection = 1 - m.confirmSelection
	case "y":
		m.confirmSelection = 0
		return m.startDeploy()
	case "h":
		m.screen = ScreenHistory
	case "enter":
		if m.confirmSelection == 0 {
			return m.startDeploy()
		}
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter", "h":
		m.screen = ScreenConfirm
	}
	return m, nil
}

func (m Model) handleUpdatePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.updateSelection > 0 {
			m.updateSelection--
		} else {
			m.updateSelection = 2
		}
	case "down", "j":
		if m.updateSelection < 2 {
			m.updateSelection++
		} else {
			m.updateSelection = 0
		}
	case "esc":
		m.updateAvailable = nil
		m.screen = m.screenAfterUpdatePrompt()
	case "enter":
		switch m.updateSelection {
		case 0: // Update now
			m.screen = ScreenUpdating
			return m, downloadUpdateCmd(m.updateAvailable, m.config.Update.Repo)
		case 1: // Skip
			m.updateAvailable = nil
			m.screen = m.screenAfterUpdatePrompt()
		case 2: // Skip this version
			m.config.Update.SkippedVersion = m.updateAvailable.TagName
			_ = m.config.Save()
			m.updateAvailable = nil
			m.screen = m.screenAfterUpdatePrompt()
		}
	}
	return m, nil
}

// screenAfterUpdatePrompt picks where to land once the update prompt is
// dismissed: a repo-load error that arrived during the prompt wins over
// the confirm screen.
func (m Model) screenAfterUpdatePrompt() Screen {
	if m.errorMessage != "" {
		return ScreenError
	}
	return ScreenConfirm
}

// Result handlers

func (m Model) handleRepoLoaded(msg repoLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = "Not in a git repository: " + msg.err.Error()
		// An update prompt may already be showing; surface the error after it
		if m.screen == ScreenLoading {
			m.screen = ScreenError
		}
		return m, nil
	}

	m.repoInfo = msg.repo
	// An update prompt may already be showing; don't steal the screen
	if m.screen == ScreenLoading {
		m.screen = ScreenConfirm
	}
	return m, nil
}

func (m Model) handleDeployEvent(msg deployEventMsg) (tea.Model, tea.Cmd) {
	e := msg.event
	if e.Step >= 0 && e.Step < len(m.stepStatus) {
		if e.Result == nil {
			m.stepStatus[e.Step] = models.Running
		} else {
			switch {
			case e.Result.Failed:
				m.stepStatus[e.Step] = models.StateFailed(e.Result.Err)
			case m.dryRun:
				m.stepStatus[e.Step] = models.Simulated
			default:
				m.stepStatus[e.Step] = models.Done
			}
			m.results = append(m.results, *e.Result)
			m.appendOutput(*e.Result)
		}
	}
	return m, listenForDeploy(m.eventsChan)
}

func (m *Model) appendOutput(result models.StepResult) {
	if result.Output == "" {
		return
	}
	m.outputTail = append(m.outputTail, strings.Split(result.Output, "\n")...)
	if len(m.outputTail) > outputTailLines {
		m.outputTail = m.outputTail[len(m.outputTail)-outputTailLines:]
	}
}

func (m Model) handleDeployDone(msg deployDoneMsg) (tea.Model, tea.Cmd) {
	summary := msg.summary
	m.summary = &summary
	m.eventsChan = nil
	m.screen = ScreenComplete

	record := newRunRecord(summary)
	m.history = append([]runRecord{record}, m.history...)
	saveHistory(m.history)

	return m, nil
}

func (m Model) handleUpdateCheckResult(msg updateCheckResult) (tea.Model, tea.Cmd) {
	m.config.RecordUpdateCheck()
	_ = m.config.Save()

	if msg.err != nil || msg.release == nil {
		return m, nil
	}
	if msg.release.TagName == m.config.Update.SkippedVersion {
		return m, nil
	}
	// Don't interrupt a run in progress
	if m.screen == ScreenLoading || m.screen == ScreenConfirm {
		m.updateAvailable = msg.release
		m.updateSelection = 0
		m.screen = ScreenUpdatePrompt
	}
	return m, nil
}

func (m Model) handleUpdateDownloadResult(msg updateDownloadResult) (tea.Model, tea.Cmd) {
	if msg.success {
		m.updateFeedback = "Updated to " + msg.version + ", restart to use the new version"
	} else {
		m.updateFeedback = "Update failed: " + msg.err.Error()
	}
	m.updateAvailable = nil
	m.screen = m.screenAfterUpdatePrompt()
	return m, nil
}
