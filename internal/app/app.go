package app

import (
	"time"

	"github.com/microscalper/scdeploy/internal/config"
	"github.com/microscalper/scdeploy/internal/deploy"
	"github.com/microscalper/scdeploy/internal/models"
	"github.com/microscalper/scdeploy/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the main application state
type Model struct {
	// Configuration
	config  *config.Config
	dryRun  bool
	version string

	// Navigation
	screen     Screen
	shouldQuit bool

	// Repository state
	repoInfo *models.RepoInfo

	// Deploy run state
	runner     *deploy.Runner
	steps      []models.StepKind
	stepStatus []models.StepState
	results    []models.StepResult
	outputTail []string
	summary    *models.RunSummary
	eventsChan chan tea.Msg

	// UI state
	confirmSelection int // 0=Yes, 1=No
	errorMessage     string
	spinnerFrame     int

	// Update state
	updateAvailable *update.Release // Non-nil if update available
	updateSelection int             // 0=Update now, 1=Skip, 2=Skip this version
	updateFeedback  string

	// Deploy history (survives across runs)
	history []runRecord

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(cfg *config.Config, dryRun bool, version string) Model {
	return Model{
		config:  cfg,
		dryRun:  dryRun,
		version: version,
		screen:  ScreenLoading,
		width:   80,
		height:  24,
		history: loadHistory(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
		loadRepoCmd(m.dryRun),
	}
	if !m.dryRun && m.config.ShouldCheckForUpdate() {
		cmds = append(cmds, checkUpdateCmd(m.version, m.config.Update.Repo))
	}
	return tea.Batch(cmds...)
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// startDeploy wires up the runner and kicks off the sequence
func (m Model) startDeploy() (tea.Model, tea.Cmd) {
	var client deploy.GitClient
	if m.dryRun {
		client = deploy.DryRunClient{}
	} else {
		client = newRepoClient(m.repoInfo)
	}

	m.runner = deploy.NewRunner(client, m.dryRun)
	m.steps = m.runner.Steps()
	m.stepStatus = make([]models.StepState, len(m.steps))
	for i := range m.stepStatus {
		m.stepStatus[i] = models.Pending
	}
	m.results = nil
	m.outputTail = nil
	m.eventsChan = make(chan tea.Msg, 8)
	m.screen = ScreenRunning

	return m, tea.Batch(
		runDeployCmd(m.runner, m.eventsChan),
		listenForDeploy(m.eventsChan),
	)
}
