package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	var yesColor, noColor lipgloss.Color

	if selection == 0 {
		yesColor = ColorGreen
		noColor = ColorDarkGray
	} else {
		yesColor = ColorDarkGray
		noColor = ColorRed
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesColor)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesColor).Bold(true)
	noStyle := lipgloss.NewStyle().Foreground(noColor)
	noTextStyle := lipgloss.NewStyle().Foreground(noColor).Bold(true)

	iconYes, iconNo := " ", " "
	if selection == 0 {
		iconYes = ">"
	} else {
		iconNo = ">"
	}

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := yesStyle.Render("  │") + yesTextStyle.Render(fmt.Sprintf(" %s  YES ", iconYes)) + yesStyle.Render("│") +
		" " + noStyle.Render("│") + noTextStyle.Render(fmt.Sprintf(" %s  NO ", iconNo)) + noStyle.Render("│")
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// StepIcon renders the checklist marker for a deploy step. Simulated steps
// get their own marker so a dry run never reads like a real one.
func StepIcon(done, failed, running, simulated bool, frame int) string {
	switch {
	case running:
		return lipgloss.NewStyle().Foreground(ColorCyan).Render(Spinner(frame))
	case failed:
		return lipgloss.NewStyle().Foreground(ColorRed).Render("✗")
	case simulated:
		return lipgloss.NewStyle().Foreground(ColorYellow).Render("◇")
	case done:
		return lipgloss.NewStyle().Foreground(ColorGreen).Render("✓")
	default:
		return lipgloss.NewStyle().Foreground(ColorDarkGray).Render("·")
	}
}

// ProgressBar renders a simple progress bar
func ProgressBar(current, total int, width int) string {
	if total == 0 {
		return ""
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	return barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %d/%d", current, total)
}

// KeyBinding renders a key hint for the status bar
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	return keyStyle.Render(key) + descStyle.Render(" "+description)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
