package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/microscalper/scdeploy/internal/models"
)

const historyMaxAge = 30 * 24 * time.Hour

// runRecord is one persisted deploy run
type runRecord struct {
	At         time.Time `json:"at"`
	HeadCommit string    `json:"head_commit"`
	Failed     int       `json:"failed_steps"`
	DryRun     bool      `json:"dry_run"`
}

func newRunRecord(summary models.RunSummary) runRecord {
	return runRecord{
		At:         summary.FinishedAt,
		HeadCommit: summary.HeadCommit,
		Failed:     summary.FailedCount(),
		DryRun:     summary.DryRun,
	}
}

// RecordRun persists a finished run. Used by plain mode, which bypasses the
// TUI model.
func RecordRun(summary models.RunSummary) {
	history := loadHistory()
	history = append([]runRecord{newRunRecord(summary)}, history...)
	saveHistory(history)
}

func historyPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "scdeploy-history.json"), nil
}

// loadHistory loads and prunes old entries from the history file
func loadHistory() []runRecord {
	path, err := historyPath()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entries []runRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	cutoff := time.Now().Add(-historyMaxAge)
	var valid []runRecord
	for _, e := range entries {
		if e.At.After(cutoff) {
			valid = append(valid, e)
		}
	}

	// Rewrite file if we pruned anything
	if len(valid) != len(entries) {
		saveHistory(valid)
	}

	return valid
}

// saveHistory saves deploy records to disk
func saveHistory(entries []runRecord) {
	path, err := historyPath()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
