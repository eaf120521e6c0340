// Package git provides git operations for gitdeck.
// This file defines the Runner interface the CLI talks to.
package git

import "context"

// Runner is the set of repository operations gitdeck exposes. All operations
// run against one repository and honor ctx for cancellation.
type Runner interface {
	// Path returns the repository root the runner operates in.
	Path() string

	// Status returns the working tree status, including untracked files.
	Status(ctx context.Context) ([]FileStatus, error)

	// Stage adds paths to the index.
	Stage(ctx context.Context, paths []string) error

	// Unstage removes paths from the index, keeping worktree changes.
	Unstage(ctx context.Context, paths []string) error

	// Commit records the index with message and returns git's summary.
	Commit(ctx context.Context, message string) (string, error)

	// CurrentBranch returns the checked out branch, "(detached:<short>)"
	// for a detached HEAD, or "" when HEAD cannot be resolved at all.
	CurrentBranch(ctx context.Context) (string, error)

	// Branches lists local branches sorted by name.
	Branches(ctx context.Context) ([]Branch, error)

	// SwitchBranch checks out an existing branch.
	SwitchBranch(ctx context.Context, name string) error

	// CreateBranch creates a branch at HEAD, switching to it when checkout is set.
	CreateBranch(ctx context.Context, name string, checkout bool) error

	// DeleteBranch deletes a branch. force allows deleting unmerged work.
	DeleteBranch(ctx context.Context, name string, force bool) error

	// Push pushes the current branch. setUpstream publishes it to the
	// default remote and records tracking.
	Push(ctx context.Context, setUpstream bool) (string, error)

	// Pull merges the upstream of the current branch.
	Pull(ctx context.Context) (string, error)

	// Fetch fetches all remotes and prunes deleted refs.
	Fetch(ctx context.Context) (string, error)

	// Remotes lists configured remotes.
	Remotes(ctx context.Context) ([]Remote, error)

	// Worktrees lists working copies attached to the repository.
	Worktrees(ctx context.Context) ([]Worktree, error)

	// AddWorktree creates a worktree at path. With newBranch, branch is created.
	AddWorktree(ctx context.Context, path, branch string, newBranch bool) error

	// RemoveWorktree detaches the worktree at path.
	RemoveWorktree(ctx context.Context, path string, force bool) error

	// Diff returns the unified diff for file, from the index when staged is set.
	Diff(ctx context.Context, file string, staged bool) (string, error)

	// CommitDiff returns the patch introduced by one commit.
	CommitDiff(ctx context.Context, hash string) (string, error)

	// Log returns the most recent commits, or none on an empty repository.
	Log(ctx context.Context, limit int) ([]Commit, error)

	// FileLog returns the history of one file, following renames.
	FileLog(ctx context.Context, file string) ([]Commit, error)

	// Blame attributes each line of file to the commit that last changed it.
	Blame(ctx context.Context, file string) ([]BlameLine, error)

	// Stashes lists stash entries, newest first.
	Stashes(ctx context.Context) ([]Stash, error)

	// StashPush saves local changes. An empty message uses git's default.
	StashPush(ctx context.Context, message string, includeUntracked bool) (string, error)

	// StashPop applies and drops stash@{index}.
	StashPop(ctx context.Context, index int) (string, error)

	// StashApply applies stash@{index} and keeps it.
	StashApply(ctx context.Context, index int) (string, error)

	// StashDrop deletes stash@{index}.
	StashDrop(ctx context.Context, index int) (string, error)

	// Tags lists local tags, newest first.
	Tags(ctx context.Context) ([]Tag, error)

	// CreateTag creates an annotated tag at HEAD.
	CreateTag(ctx context.Context, name, message string) error

	// DeleteTag deletes a local tag.
	DeleteTag(ctx context.Context, name string) error

	// PushTag publishes a tag to the default remote.
	PushTag(ctx context.Context, name string) error

	// DeleteRemoteTag deletes a tag from the default remote.
	DeleteRemoteTag(ctx context.Context, name string) error

	// CommitsSinceTag returns one-line summaries of non-merge commits after
	// tag, or of the latest commits when tag is empty.
	CommitsSinceTag(ctx context.Context, tag string) ([]string, error)
}
