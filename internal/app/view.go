package app

import (
	"fmt"
	"strings"

	"github.com/microscalper/scdeploy/internal/deploy"
	"github.com/microscalper/scdeploy/internal/models"
	"github.com/microscalper/scdeploy/internal/ui"
	"github.com/microscalper/scdeploy/internal/update"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string

	sections = append(sections, ui.RenderBanner(m.dryRun))
	sections = append(sections, "")

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth()).
		Padding(1, 2)

	sections = append(sections, outerBox.Render(m.renderContent()))

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContent() string {
	switch m.screen {
	case ScreenLoading:
		return m.renderLoading()
	case ScreenConfirm:
		return m.renderConfirm()
	case ScreenRunning:
		return m.renderRunning()
	case ScreenComplete:
		return m.renderComplete()
	case ScreenError:
		return m.renderError()
	case ScreenHistory:
		return m.renderHistory()
	case ScreenUpdatePrompt:
		return m.renderUpdatePrompt()
	case ScreenUpdating:
		return m.renderUpdating()
	default:
		return ""
	}
}

func (m Model) renderLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		textStyle.Render("Detecting repository...")))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m Model) renderConfirm() string {
	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	valueStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	targetStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)

	var lines []string
	lines = append(lines, ui.SectionHeader("DEPLOY", ui.ColorOrange))
	lines = append(lines, "")

	if m.repoInfo != nil {
		lines = append(lines, labelStyle.Render("  Repo:   ")+valueStyle.Render(m.repoInfo.DisplayName))
		if m.repoInfo.CurrentBranch != "" {
			lines = append(lines, labelStyle.Render("  Branch: ")+valueStyle.Render(m.repoInfo.CurrentBranch))
		}
		if m.repoInfo.MainBranch != "" {
			mainStyle := valueStyle
			mainLabel := m.repoInfo.MainBranch
			if m.repoInfo.MainBranch != deploy.Branch {
				mainStyle = lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
				mainLabel += " (push still targets " + deploy.Branch + ")"
			}
			lines = append(lines, labelStyle.Render("  Main:   ")+mainStyle.Render(mainLabel))
		}
	}
	lines = append(lines, labelStyle.Render("  Target: ")+targetStyle.Render(deploy.Remote+"/"+deploy.Branch))
	lines = append(lines, "")

	msgStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	lines = append(lines, labelStyle.Render("  Commit: ")+msgStyle.Render(commitSubject()))
	lines = append(lines, "")

	for i, kind := range stepOrder() {
		numStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		stepStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		lines = append(lines, fmt.Sprintf("  %s %s",
			numStyle.Render(fmt.Sprintf("%d.", i+1)),
			stepStyle.Render(kind.Command())))
	}
	lines = append(lines, "")

	if m.updateFeedback != "" {
		feedbackStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		lines = append(lines, feedbackStyle.Render("  "+m.updateFeedback))
		lines = append(lines, "")
	}

	questionStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWhite)
	lines = append(lines, questionStyle.Render("  Run the deploy sequence?"))
	lines = append(lines, "")
	lines = append(lines, ui.YesNoButtons(m.confirmSelection))

	return strings.Join(lines, "\n")
}

func (m Model) renderRunning() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("DEPLOYING", ui.ColorCyan))
	lines = append(lines, "")

	for i, kind := range m.steps {
		status := m.stepStatus[i]
		icon := ui.StepIcon(
			models.IsStateDone(status),
			models.IsStateFailed(status),
			models.IsStateRunning(status),
			models.IsStateSimulated(status),
			m.spinnerFrame,
		)

		nameColor := ui.ColorDarkGray
		if !models.IsStatePending(status) {
			nameColor = ui.ColorWhite
		}
		nameStyle := lipgloss.NewStyle().Foreground(nameColor)
		line := fmt.Sprintf("  %s %s", icon, nameStyle.Render(kind.Display()))

		if models.IsStateFailed(status) {
			reason := models.GetStateReason(status)
			if idx := strings.IndexByte(reason, '\n'); idx >= 0 {
				reason = reason[:idx]
			}
			failStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
			line += failStyle.Render("  " + reason)
		}

		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, "  "+ui.ProgressBar(len(m.results), len(m.steps), 30))

	if len(m.outputTail) > 0 {
		lines = append(lines, "")
		outputStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		for _, out := range m.outputTail {
			lines = append(lines, outputStyle.Render("  "+out))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderComplete() string {
	successStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorGreen)
	urlStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Underline(true)
	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	var lines []string
	lines = append(lines, ui.SectionHeader("DONE", ui.ColorGreen))
	lines = append(lines, "")
	lines = append(lines, "  🚀 "+successStyle.Render(deploy.SuccessMessage))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("  Dashboard: ")+urlStyle.Render(deploy.DashboardURL))

	if m.summary != nil {
		if m.summary.HeadCommit != "" {
			lines = append(lines, labelStyle.Render("  Commit:    ")+
				lipgloss.NewStyle().Foreground(ui.ColorYellow).Render(m.summary.HeadCommit))
		}
		if failed := m.summary.FailedCount(); failed > 0 {
			warnStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
			lines = append(lines, "")
			lines = append(lines, warnStyle.Render(fmt.Sprintf("  %d step(s) reported errors:", failed)))
			for _, r := range m.summary.Results {
				if r.Failed {
					lines = append(lines, warnStyle.Render("    ✗ "+r.Kind.Display()))
				}
			}
		}
	}

	lines = append(lines, "")
	hintStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	lines = append(lines, hintStyle.Render("  Press any key to exit..."))

	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	errorStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorRed)
	hintStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	var lines []string
	lines = append(lines, ui.SectionHeader("ERROR", ui.ColorRed))
	lines = append(lines, "")
	lines = append(lines, errorStyle.Render("  "+m.errorMessage))
	lines = append(lines, "")
	lines = append(lines, hintStyle.Render("  Press any key to exit..."))

	return strings.Join(lines, "\n")
}

func (m Model) renderHistory() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("RECENT DEPLOYS", ui.ColorMagenta))
	lines = append(lines, "")

	if len(m.history) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dimStyle.Render("  No deploys recorded yet"))
	}

	timeStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	hashStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	okStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen)
	badStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
	dryStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	shown := m.history
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, record := range shown {
		line := "  " + timeStyle.Render(record.At.Format("Jan 02 15:04"))
		if record.HeadCommit != "" {
			line += "  " + hashStyle.Render(record.HeadCommit)
		}
		if record.DryRun {
			line += "  " + dryStyle.Render("(dry run)")
		} else if record.Failed > 0 {
			line += "  " + badStyle.Render(fmt.Sprintf("%d failed", record.Failed))
		} else {
			line += "  " + okStyle.Render("ok")
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderUpdatePrompt() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)

	version := ""
	if m.updateAvailable != nil {
		version = update.VersionDisplay(m.updateAvailable.TagName)
	}

	var lines []string
	lines = append(lines, ui.SectionHeader("UPDATE AVAILABLE", ui.ColorYellow))
	lines = append(lines, "")
	lines = append(lines, titleStyle.Render(fmt.Sprintf("  Version %s is available (you have %s)", version, m.version)))
	lines = append(lines, "")

	options := []string{"Update now", "Skip", "Skip this version"}
	for i, option := range options {
		arrow := "  "
		style := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		if i == m.updateSelection {
			arrow = "▶ "
			style = lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
		}
		lines = append(lines, "  "+arrow+style.Render(option))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderUpdating() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		textStyle.Render("Downloading update...")))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenConfirm:
		hints = append(hints,
			ui.KeyBinding("y/enter", "deploy", ui.ColorGreen),
			ui.KeyBinding("n/q", "quit", ui.ColorRed),
			ui.KeyBinding("h", "history", ui.ColorMagenta),
		)
	case ScreenRunning:
		hints = append(hints, ui.KeyBinding("ctrl+c", "abort", ui.ColorRed))
	case ScreenComplete, ScreenError:
		hints = append(hints, ui.KeyBinding("any key", "exit", ui.ColorCyan))
	case ScreenHistory:
		hints = append(hints, ui.KeyBinding("esc", "back", ui.ColorCyan))
	case ScreenUpdatePrompt:
		hints = append(hints,
			ui.KeyBinding("↑/↓", "select", ui.ColorCyan),
			ui.KeyBinding("enter", "confirm", ui.ColorGreen),
		)
	}

	versionStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	hints = append(hints, versionStyle.Render("scdeploy "+m.version))

	return "  " + strings.Join(hints, "   ")
}

// stepOrder mirrors the runner's fixed sequence for preview rendering
func stepOrder() []models.StepKind {
	return []models.StepKind{
		models.StepStatus,
		models.StepStageAll,
		models.StepCommit,
		models.StepPush,
	}
}

// commitSubject returns the first line of the fixed commit message
func commitSubject() string {
	msg := deploy.CommitMessage
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		return msg[:idx]
	}
	return msg
}
