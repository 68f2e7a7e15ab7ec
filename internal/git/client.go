package git

import (
	"os/exec"
	"strings"
)

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// CLI runs git commands in a repository using the git binary on PATH
// (rather than go-git) so pushes inherit the user's SSH agent and
// credential helpers.
type CLI struct {
	// Dir is the repository path; empty means the process working directory
	Dir string
}

// NewCLI creates a CLI client for the given repository path
func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir}
}

// run executes a git subcommand and returns its combined output. The output
// is returned even on failure so callers can display what git printed.
func (c *CLI) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.Dir

	output, err := cmd.CombinedOutput()
	outputStr := strings.TrimSpace(string(output))
	if err != nil {
		if outputStr == "" {
			outputStr = err.Error()
		}
		return outputStr, &GitError{Command: args[0], Output: outputStr}
	}

	return outputStr, nil
}

// Status reports the working tree status
func (c *CLI) Status() (string, error) {
	return c.run("status")
}

// StageAll stages every pending change, tracked and untracked
func (c *CLI) StageAll() (string, error) {
	return c.run("add", "--all")
}

// Commit commits staged changes with the given message
func (c *CLI) Commit(message string) (string, error) {
	return c.run("commit", "-m", message)
}

// Push pushes the local branch to the given remote and branch
func (c *CLI) Push(remote, branch string) (string, error) {
	return c.run("push", remote, branch)
}

// HeadShort returns the abbreviated hash of HEAD
func (c *CLI) HeadShort() (string, error) {
	return c.run("rev-parse", "--short", "HEAD")
}
