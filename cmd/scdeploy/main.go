package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/microscalper/scdeploy/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/microscalper/scdeploy/internal/app"
	"github.com/microscalper/scdeploy/internal/config"
	"github.com/microscalper/scdeploy/internal/deploy"
	"github.com/microscalper/scdeploy/internal/git"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var (
	dryRun bool
	plain  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "scdeploy",
		Short:   "Push the Micro Scalper bot to GitHub for deployment",
		Version: version,
		RunE:    run,
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate the git sequence without making changes")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Print sequential output instead of the TUI")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if plain || cfg.UI.Plain {
		return runPlain()
	}

	model := app.New(cfg, dryRun, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// runPlain reproduces the classic deploy script: banner, the git sequence
// with each step's output, success banner, wait for a keypress.
func runPlain() error {
	var client deploy.GitClient
	if dryRun {
		client = deploy.DryRunClient{}
	} else {
		repo, err := git.GetCurrentRepoInfo()
		if err != nil {
			return fmt.Errorf("not in a git repository: %w", err)
		}
		client = git.NewCLI(repo.Path)
	}

	runner := deploy.NewRunner(client, dryRun)
	console := deploy.NewConsole(os.Stdin, os.Stdout)
	summary := console.Run(runner)

	app.RecordRun(summary)
	return nil
}
