package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenConfirm
	ScreenRunning
	ScreenComplete
	ScreenError
	ScreenHistory
	ScreenUpdatePrompt
	ScreenUpdating
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"Confirm",
		"Running",
		"Complete",
		"Error",
		"History",
		"UpdatePrompt",
		"Updating",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
