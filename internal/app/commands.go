package app

import (
	"time"

	"github.com/microscalper/scdeploy/internal/deploy"
	"github.com/microscalper/scdeploy/internal/git"
	"github.com/microscalper/scdeploy/internal/models"
	"github.com/microscalper/scdeploy/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type repoLoadedMsg struct {
	repo *models.RepoInfo
	err  error
}

// deployEventMsg wraps one runner progress event
type deployEventMsg struct {
	event deploy.Event
}

// deployDoneMsg carries the final summary after the last step
type deployDoneMsg struct {
	summary models.RunSummary
}

// Update check messages
type updateCheckResult struct {
	release *update.Release
	err     error
}

type updateDownloadResult struct {
	success bool
	version string
	err     error
}

// newRepoClient builds the git CLI client for the detected repository
func newRepoClient(repo *models.RepoInfo) deploy.GitClient {
	path := ""
	if repo != nil {
		path = repo.Path
	}
	return git.NewCLI(path)
}

// loadRepoCmd detects the repository in the current working directory
func loadRepoCmd(dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(400 * time.Millisecond)
			repo := models.NewRepoInfo("/home/user/micro-scalper", "micro-scalper", "main").
				WithCurrentBranch("main")
			return repoLoadedMsg{repo: &repo}
		}

		repo, err := git.GetCurrentRepoInfo()
		if err != nil {
			return repoLoadedMsg{err: err}
		}
		return repoLoadedMsg{repo: repo}
	}
}

// runDeployCmd drives the full sequence in the background, streaming
// progress through ch. The channel is closed after the final summary so the
// listener can stop.
func runDeployCmd(runner *deploy.Runner, ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			summary := runner.Run(func(e deploy.Event) {
				ch <- deployEventMsg{event: e}
			})
			ch <- deployDoneMsg{summary: summary}
			close(ch)
		}()
		return nil
	}
}

// listenForDeploy creates a subscription that relays the next deploy message
func listenForDeploy(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// checkUpdateCmd checks for available updates
func checkUpdateCmd(currentVersion, repo string) tea.Cmd {
	return func() tea.Msg {
		release, err := update.CheckForUpdate(currentVersion, repo)
		return updateCheckResult{release: release, err: err}
	}
}

// downloadUpdateCmd downloads and installs an update
func downloadUpdateCmd(release *update.Release, repo string) tea.Cmd {
	return func() tea.Msg {
		err := update.DownloadAndInstall(release, repo)
		if err != nil {
			return updateDownloadResult{success: false, err: err}
		}
		return updateDownloadResult{success: true, version: update.VersionDisplay(release.TagName)}
	}
}
