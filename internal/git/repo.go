package git

import (
	"os"
	"path/filepath"

	"github.com/microscalper/scdeploy/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// GetCurrentRepoInfo gets info for the current working directory, walking
// up to the repository root
func GetCurrentRepoInfo() (*models.RepoInfo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	path := cwd
	for {
		if IsGitRepo(path) {
			break
		}
		parent := filepath.Dir(path)
		if parent == path {
			return nil, os.ErrNotExist
		}
		path = parent
	}

	return GetRepoInfo(path, filepath.Base(path))
}

// GetRepoInfo opens a repository and gets basic info
func GetRepoInfo(path, displayName string) (*models.RepoInfo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	mainBranch, err := DetectMainBranch(repo)
	if err != nil {
		return nil, err
	}

	info := models.NewRepoInfo(path, displayName, mainBranch)

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		info = info.WithCurrentBranch(head.Name().Short())
	}

	return &info, nil
}

// DetectMainBranch determines if the repo uses "main" or "master"
func DetectMainBranch(repo *git.Repository) (string, error) {
	refs, err := repo.References()
	if err != nil {
		return "main", nil
	}

	hasRemoteMain := false
	hasRemoteMaster := false
	hasLocalMain := false
	hasLocalMaster := false

	refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if name == "refs/remotes/origin/main" {
			hasRemoteMain = true
		}
		if name == "refs/remotes/origin/master" {
			hasRemoteMaster = true
		}
		if name == "refs/heads/main" {
			hasLocalMain = true
		}
		if name == "refs/heads/master" {
			hasLocalMaster = true
		}
		return nil
	})

	// Prefer remote refs
	if hasRemoteMain {
		return "main", nil
	}
	if hasRemoteMaster {
		return "master", nil
	}

	if hasLocalMain {
		return "main", nil
	}
	if hasLocalMaster {
		return "master", nil
	}

	// Default to main
	return "main", nil
}
