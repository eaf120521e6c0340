// Package git provides git operations for gitdeck.
// This file implements Repository, the CLI-backed Runner.
package git

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/gitdeck/internal/constants"
	"github.com/mrz1836/gitdeck/internal/ctxutil"
	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

// Repository implements Runner by shelling out to git.
type Repository struct {
	path         string
	binary       string
	remote       string
	fileLogLimit int
	timeout      time.Duration
}

// Option configures a Repository.
type Option func(*Repository)

// WithBinary overrides the git executable.
func WithBinary(binary string) Option {
	return func(r *Repository) {
		if binary != "" {
			r.binary = binary
		}
	}
}

// WithRemote sets the remote used by Push and tag publishing.
func WithRemote(remote string) Option {
	return func(r *Repository) {
		if remote != "" {
			r.remote = remote
		}
	}
}

// WithFileLogLimit caps the number of commits returned by FileLog.
func WithFileLogLimit(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.fileLogLimit = n
		}
	}
}

// WithTimeout bounds every git invocation. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Repository) {
		r.timeout = d
	}
}

// Open returns a Repository rooted at the top level of the work tree that
// contains path. It fails with ErrNotGitRepo when path is not inside one.
func Open(ctx context.Context, path string, opts ...Option) (*Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("repository path cannot be empty: %w", deckerrors.ErrEmptyValue)
	}

	r := &Repository{
		path:         path,
		binary:       constants.DefaultGitBinary,
		remote:       constants.DefaultRemote,
		fileLogLimit: constants.DefaultFileLogLimit,
	}
	for _, opt := range opts {
		opt(r)
	}

	top, err := r.output(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return nil, fmt.Errorf("%w: %w", deckerrors.ErrNotGitRepo, err)
		}
		return nil, err
	}
	r.path = top

	zerolog.Ctx(ctx).Debug().Str("repo", r.path).Msg("opened repository")
	return r, nil
}

// Version returns `git --version` output. It runs in the caller's working
// directory because it does not depend on any repository.
func Version(ctx context.Context, binary string) (string, error) {
	if binary == "" {
		binary = constants.DefaultGitBinary
	}
	res, err := Invoke(ctx, binary, "", "--version")
	if err != nil {
		return "", err
	}
	if !res.Succeeded {
		return "", fmt.Errorf("git exited with code %d: %s: %w",
			res.ExitCode, strings.TrimSpace(res.Stderr), deckerrors.ErrGitOperation)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Path returns the repository root.
func (r *Repository) Path() string {
	return r.path
}

// run invokes git in the repository, applying the configured timeout.
func (r *Repository) run(ctx context.Context, args ...string) (*Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return Invoke(ctx, r.binary, r.path, args...)
}

// output runs git and returns trimmed stdout, or a *CommandError.
func (r *Repository) output(ctx context.Context, args ...string) (string, error) {
	res, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// chatter runs a command whose progress lands on stderr even on success and
// returns both streams joined.
func (r *Repository) chatter(ctx context.Context, args ...string) (string, error) {
	res, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return joinNonEmpty(strings.TrimSpace(res.Stdout), strings.TrimSpace(res.Stderr)), nil
}

// Status returns the working tree status.
func (r *Repository) Status(ctx context.Context) ([]FileStatus, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	res, err := r.run(ctx, "status", "--porcelain=v1", "-u")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ParseStatus(res.Stdout), nil
}

// Stage adds paths to the index.
func (r *Repository) Stage(ctx context.Context, paths []string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths to stage: %w", deckerrors.ErrEmptyValue)
	}
	_, err := r.output(ctx, append([]string{"add", "--"}, paths...)...)
	return err
}

// Unstage removes paths from the index.
func (r *Repository) Unstage(ctx context.Context, paths []string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths to unstage: %w", deckerrors.ErrEmptyValue)
	}
	_, err := r.output(ctx, append([]string{"restore", "--staged", "--"}, paths...)...)
	return err
}

// Commit records the index.
func (r *Repository) Commit(ctx context.Context, message string) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("commit message cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	return r.output(ctx, "commit", "-m", message)
}

// CurrentBranch returns the checked out branch name.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	// symbolic-ref answers even before the first commit.
	res, err := r.run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	if res.Succeeded {
		return strings.TrimSpace(res.Stdout), nil
	}

	res, err = r.run(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	if res.Succeeded {
		return "(detached:" + strings.TrimSpace(res.Stdout) + ")", nil
	}
	return "", nil
}

// Branches lists local branches.
func (r *Repository) Branches(ctx context.Context) ([]Branch, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	res, err := r.run(ctx, "for-each-ref", "--sort=refname", "--format="+BranchFormat, "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ParseBranches(res.Stdout), nil
}

// SwitchBranch checks out name.
func (r *Repository) SwitchBranch(ctx context.Context, name string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("branch name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	_, err := r.output(ctx, "switch", name)
	return err
}

// CreateBranch creates name at HEAD.
func (r *Repository) CreateBranch(ctx context.Context, name string, checkout bool) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("branch name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	args := []string{"branch", name}
	if checkout {
		args = []string{"switch", "-c", name}
	}
	_, err := r.output(ctx, args...)
	return err
}

// DeleteBranch deletes name.
func (r *Repository) DeleteBranch(ctx context.Context, name string, force bool) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("branch name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.output(ctx, "branch", flag, name)
	return err
}

// Push pushes the current branch.
func (r *Repository) Push(ctx context.Context, setUpstream bool) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	if !setUpstream {
		return r.chatter(ctx, "push")
	}
	branch, err := r.output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve current branch: %w", err)
	}
	return r.chatter(ctx, "push", "--set-upstream", r.remote, branch)
}

// Pull merges the upstream of the current branch.
func (r *Repository) Pull(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	return r.output(ctx, "pull")
}

// Fetch fetches all remotes.
func (r *Repository) Fetch(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	return r.chatter(ctx, "fetch", "--all", "--prune")
}

// Remotes lists configured remotes.
func (r *Repository) Remotes(ctx context.Context) ([]Remote, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	res, err := r.run(ctx, "remote", "-v")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ParseRemotes(res.Stdout), nil
}

// Worktrees lists attached working copies.
func (r *Repository) Worktrees(ctx context.Context) ([]Worktree, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	res, err := r.run(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ParseWorktrees(res.Stdout), nil
}

// AddWorktree creates a worktree at path.
func (r *Repository) AddWorktree(ctx context.Context, path, branch string, newBranch bool) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("worktree path cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	args := []string{"worktree", "add"}
	switch {
	case newBranch && branch == "":
		return fmt.Errorf("new worktree branch needs a name: %w", deckerrors.ErrEmptyValue)
	case newBranch:
		args = append(args, "-b", branch, path)
	case branch != "":
		args = append(args, path, branch)
	default:
		args = append(args, path)
	}
	res, err := r.run(ctx, args...)
	if err != nil {
		return err
	}
	return res.errWithOutput()
}

// RemoveWorktree removes the worktree at path.
func (r *Repository) RemoveWorktree(ctx context.Context, path string, force bool) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("worktree path cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	res, err := r.run(ctx, append(args, path)...)
	if err != nil {
		return err
	}
	return res.errWithOutput()
}

// Diff returns the unified diff for file.
func (r *Repository) Diff(ctx context.Context, file string, staged bool) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	args := []string{"diff"}
	if staged {
		args = append(args, "--staged")
	}
	res, err := r.run(ctx, withPathspec(args, file)...)
	if err != nil {
		return "", err
	}
	// Exit code 1 means "differences found" for diff.
	if !res.Succeeded && res.ExitCode != 1 {
		return "", res.Err()
	}
	if res.Stdout == "" && staged {
		// A file that only exists in the index.
		res, err = r.run(ctx, withPathspec([]string{"diff", "--staged", "--diff-filter=A"}, file)...)
		if err != nil {
			return "", err
		}
	}
	return res.Stdout, nil
}

// withPathspec appends "-- file" when file is set. Git rejects an empty pathspec.
func withPathspec(args []string, file string) []string {
	if file == "" {
		return args
	}
	return append(args, "--", file)
}

// CommitDiff returns the patch of one commit.
func (r *Repository) CommitDiff(ctx context.Context, hash string) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	if hash == "" {
		return "", fmt.Errorf("commit hash cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	res, err := r.run(ctx, "show", "--format=fuller", "--patch", hash, "--")
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Log returns the most recent commits.
func (r *Repository) Log(ctx context.Context, limit int) ([]Commit, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = constants.DefaultLogLimit
	}
	res, err := r.run(ctx, "log", "-n"+strconv.Itoa(limit), "--format="+LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return CollectOrEmpty(res, ParseLog)
}

// FileLog returns the history of file.
func (r *Repository) FileLog(ctx context.Context, file string) ([]Commit, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if file == "" {
		return nil, fmt.Errorf("file cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	res, err := r.run(ctx, "log", "-n"+strconv.Itoa(r.fileLogLimit), "--follow", "--format="+LogFormat, "--", file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file log: %w", err)
	}
	return CollectOrEmpty(res, ParseLog)
}

// Blame attributes each line of file.
func (r *Repository) Blame(ctx context.Context, file string) ([]BlameLine, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if file == "" {
		return nil, fmt.Errorf("file cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	res, err := r.run(ctx, "blame", "--porcelain", "--", file)
	if err != nil {
		return nil, fmt.Errorf("failed to blame %s: %w", file, err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ParseBlame(res.Stdout), nil
}

// Stashes lists stash entries. A repository without stashes yields none.
func (r *Repository) Stashes(ctx context.Context) ([]Stash, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	res, err := r.run(ctx, "stash", "list", "--format="+StashFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to list stashes: %w", err)
	}
	if !res.Succeeded && strings.TrimSpace(res.Stderr) != "" {
		return nil, res.Err()
	}
	return ParseStashes(res.Stdout), nil
}

// StashPush saves local changes.
func (r *Repository) StashPush(ctx context.Context, message string, includeUntracked bool) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	args := []string{"stash", "push"}
	if includeUntracked {
		args = append(args, "-u")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	return r.stash(ctx, args...)
}

// StashPop applies and drops stash@{index}.
func (r *Repository) StashPop(ctx context.Context, index int) (string, error) {
	return r.stashRef(ctx, "pop", index)
}

// StashApply applies stash@{index}.
func (r *Repository) StashApply(ctx context.Context, index int) (string, error) {
	return r.stashRef(ctx, "apply", index)
}

// StashDrop deletes stash@{index}.
func (r *Repository) StashDrop(ctx context.Context, index int) (string, error) {
	return r.stashRef(ctx, "drop", index)
}

func (r *Repository) stashRef(ctx context.Context, verb string, index int) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}
	if index < 0 {
		return "", fmt.Errorf("stash index %d: %w", index, deckerrors.ErrInvalidArgument)
	}
	return r.stash(ctx, "stash", verb, StashRef(index))
}

func (r *Repository) stash(ctx context.Context, args ...string) (string, error) {
	res, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	if err := res.errWithOutput(); err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// StashRef formats the reference for the stash at index.
func StashRef(index int) string {
	return "stash@{" + strconv.Itoa(index) + "}"
}

// Tags lists local tags, newest first.
func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	res, err := r.run(ctx, "tag", "-l", "--sort=-creatordate", "--format="+TagFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ParseTags(res.Stdout), nil
}

// CreateTag creates an annotated tag at HEAD.
func (r *Repository) CreateTag(ctx context.Context, name, message string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("tag name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	if message == "" {
		message = name
	}
	_, err := r.output(ctx, "tag", "-a", name, "-m", message)
	return err
}

// DeleteTag deletes a local tag.
func (r *Repository) DeleteTag(ctx context.Context, name string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("tag name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	_, err := r.output(ctx, "tag", "-d", name)
	return err
}

// PushTag publishes a tag.
func (r *Repository) PushTag(ctx context.Context, name string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("tag name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	_, err := r.chatter(ctx, "push", r.remote, "refs/tags/"+name)
	return err
}

// DeleteRemoteTag deletes a tag from the remote.
func (r *Repository) DeleteRemoteTag(ctx context.Context, name string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("tag name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	_, err := r.chatter(ctx, "push", r.remote, "--delete", "refs/tags/"+name)
	return err
}

// CommitsSinceTag lists non-merge commits after tag.
func (r *Repository) CommitsSinceTag(ctx context.Context, tag string) ([]string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	args := []string{"log", "--oneline", "--no-merges"}
	if tag != "" {
		args = append(args, tag+"..HEAD")
	} else {
		args = append(args, "-n", strconv.Itoa(constants.CommitsSinceTagFallback))
	}
	res, err := r.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	return CollectOrEmpty(res, ParseOneline)
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// Compile-time check that Repository implements Runner.
var _ Runner = (*Repository)(nil)
