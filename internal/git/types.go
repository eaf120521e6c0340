// Package git provides git operations for gitdeck.
// This file defines the records decoded from git's porcelain output.
package git

// Result is the captured outcome of one git invocation. A non-zero exit is
// reported here rather than as an error; callers decide what it means.
type Result struct {
	Stdout    string `json:"stdout"`
	Stderr    string `json:"stderr"`
	Succeeded bool   `json:"success"`
	ExitCode  int    `json:"code"` // -1 when the process was killed by a signal

	args []string
}

// FileStatus is one entry of `git status --porcelain=v1`.
// A path may be staged and unstaged at the same time.
type FileStatus struct {
	Path           string `json:"path"`
	StagedStatus   string `json:"staged_status"`
	UnstagedStatus string `json:"unstaged_status"`
	IsStaged       bool   `json:"is_staged"`
	IsUnstaged     bool   `json:"is_unstaged"`
	OriginalPath   string `json:"original_path,omitempty"`
}

// BlameLine attributes one line of the final file to a commit.
type BlameLine struct {
	LineNumber int    `json:"line_number"`
	Hash       string `json:"hash"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	Content    string `json:"content"`
}

// Branch is a local branch with its optional upstream.
type Branch struct {
	Name     string  `json:"name"`
	Current  bool    `json:"current"`
	Upstream *string `json:"upstream"`
}

// Tag is a local tag. Message is nil when the tag has no subject.
type Tag struct {
	Name       string  `json:"name"`
	CommitHash string  `json:"commit_hash"`
	Date       string  `json:"date"`
	Message    *string `json:"message"`
}

// Commit is one record of the history view.
type Commit struct {
	Hash      string `json:"hash"`
	ShortHash string `json:"short_hash"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

// Worktree is a working copy attached to the repository.
type Worktree struct {
	Path     string `json:"path"`
	Branch   string `json:"branch"` // empty when detached
	Commit   string `json:"commit"`
	IsMain   bool   `json:"is_main"`
	Locked   bool   `json:"locked"`
	Prunable bool   `json:"prunable"`
}

// Stash is one saved stash entry. Index 0 is the most recent.
type Stash struct {
	Index     int    `json:"index"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
	Hash      string `json:"hash"`
}

// Remote is a configured remote and the URL it fetches from.
type Remote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// shortID truncates a commit id for display without reading past its end.
func shortID(id string) string {
	const n = 8
	if len(id) <= n {
		return id
	}
	return id[:n]
}
