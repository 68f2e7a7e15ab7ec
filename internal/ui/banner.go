package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner returns the ASCII art banner for the application header
var Banner = []string{
	" ____    ____     _     _      ____   _____  ____       ____   _____  ____   _       ___  __   __",
	"/ ___|  / ___|   / \\   | |    |  _ \\ | ____||  _ \\     |  _ \\ | ____||  _ \\ | |     / _ \\ \\ \\ / /",
	"\\___ \\ | |      / _ \\  | |    | |_) ||  _|  | |_) |    | | | ||  _|  | |_) || |    | | | | \\ V / ",
	" ___) || |___  / ___ \\ | |___ |  __/ | |___ |  _ <     | |_| || |___ |  __/ | |___ | |_| |  | |  ",
	"|____/  \\____|/_/   \\_\\|_____||_|    |_____||_| \\_\\    |____/ |_____||_|    |_____| \\___/   |_|  ",
}

// RenderBanner returns the styled banner as a string
func RenderBanner(dryRun bool) string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	// Add dry run warning if enabled
	if dryRun {
		lines = append(lines, "")
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)
		lines = append(lines, warningStyle.Render("⚠ DRY RUN MODE"))
	}

	return strings.Join(lines, "\n")
}
