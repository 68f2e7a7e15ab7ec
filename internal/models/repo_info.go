package models

// RepoInfo contains information about the git repository being deployed
type RepoInfo struct {
	// Path to the repository root
	Path string
	// DisplayName (directory name, e.g., "micro-scalper")
	DisplayName string
	// MainBranch name the repo actually uses ("main" or "master")
	MainBranch string
	// CurrentBranch the working tree is on
	CurrentBranch string
}

// NewRepoInfo creates a new RepoInfo
func NewRepoInfo(path, displayName, mainBranch string) RepoInfo {
	return RepoInfo{
		Path:        path,
		DisplayName: displayName,
		MainBranch:  mainBranch,
	}
}

// WithCurrentBranch sets the current branch and returns the RepoInfo
func (r RepoInfo) WithCurrentBranch(branch string) RepoInfo {
	r.CurrentBranch = branch
	return r
}
