package deploy

import "time"

// DryRunClient simulates the git sequence without touching the repository.
// Outputs mimic what git prints so the UI renders realistically.
type DryRunClient struct{}

func (DryRunClient) Status() (string, error) {
	time.Sleep(400 * time.Millisecond)
	return "On branch main\nChanges not staged for commit:\n" +
		"  modified:   tsl_manager.py\n  modified:   smart_entry.py\n\n" +
		"Untracked files:\n  spot_analyzer.py", nil
}

func (DryRunClient) StageAll() (string, error) {
	time.Sleep(300 * time.Millisecond)
	return "", nil
}

func (DryRunClient) Commit(message string) (string, error) {
	time.Sleep(500 * time.Millisecond)
	return "[main abc1234] " + firstLine(message) + "\n 3 files changed, 120 insertions(+)", nil
}

func (DryRunClient) Push(remote, branch string) (string, error) {
	time.Sleep(800 * time.Millisecond)
	return "To github.com:example/micro-scalper.git\n   def5678..abc1234  " + branch + " -> " + branch, nil
}

func (DryRunClient) HeadShort() (string, error) {
	return "abc1234", nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
