package cli

import (
	"bytes"
	"context"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitdeck/internal/config"
	"github.com/mrz1836/gitdeck/internal/git"
)

// fakeRunner is an in-memory git.Runner. Fields hold canned results and
// calls records every mutating operation as "op arg...".
type fakeRunner struct {
	mu    sync.Mutex
	calls []string

	path      string
	branch    string
	files     []git.FileStatus
	branches  []git.Branch
	commits   []git.Commit
	blame     []git.BlameLine
	diff      string
	stashes   []git.Stash
	tags      []git.Tag
	since     []string
	worktrees []git.Worktree
	remotes   []git.Remote
	summary   string
	err       error
}

var _ git.Runner = (*fakeRunner)(nil)

func (f *fakeRunner) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRunner) Path() string { return f.path }

func (f *fakeRunner) Status(context.Context) ([]git.FileStatus, error) { return f.files, f.err }

func (f *fakeRunner) Stage(_ context.Context, paths []string) error {
	f.record(join("stage", paths...))
	return f.err
}

func (f *fakeRunner) Unstage(_ context.Context, paths []string) error {
	f.record(join("unstage", paths...))
	return f.err
}

func (f *fakeRunner) Commit(_ context.Context, message string) (string, error) {
	f.record(join("commit", message))
	return f.summary, f.err
}

func (f *fakeRunner) CurrentBranch(context.Context) (string, error) { return f.branch, f.err }

func (f *fakeRunner) Branches(context.Context) ([]git.Branch, error) { return f.branches, f.err }

func (f *fakeRunner) SwitchBranch(_ context.Context, name string) error {
	f.record(join("switch", name))
	return f.err
}

func (f *fakeRunner) CreateBranch(_ context.Context, name string, checkout bool) error {
	f.record(join("create-branch", name, boolArg(checkout)))
	return f.err
}

func (f *fakeRunner) DeleteBranch(_ context.Context, name string, force bool) error {
	f.record(join("delete-branch", name, boolArg(force)))
	return f.err
}

func (f *fakeRunner) Push(_ context.Context, setUpstream bool) (string, error) {
	f.record(join("push", boolArg(setUpstream)))
	return f.summary, f.err
}

func (f *fakeRunner) Pull(context.Context) (string, error) {
	f.record("pull")
	return f.summary, f.err
}

func (f *fakeRunner) Fetch(context.Context) (string, error) {
	f.record("fetch")
	return f.summary, f.err
}

func (f *fakeRunner) Remotes(context.Context) ([]git.Remote, error) { return f.remotes, f.err }

func (f *fakeRunner) Worktrees(context.Context) ([]git.Worktree, error) { return f.worktrees, f.err }

func (f *fakeRunner) AddWorktree(_ context.Context, path, branch string, newBranch bool) error {
	f.record(join("add-worktree", path, branch, boolArg(newBranch)))
	return f.err
}

func (f *fakeRunner) RemoveWorktree(_ context.Context, path string, force bool) error {
	f.record(join("remove-worktree", path, boolArg(force)))
	return f.err
}

func (f *fakeRunner) Diff(_ context.Context, file string, staged bool) (string, error) {
	f.record(join("diff", file, boolArg(staged)))
	return f.diff, f.err
}

func (f *fakeRunner) CommitDiff(_ context.Context, hash string) (string, error) {
	f.record(join("show", hash))
	return f.diff, f.err
}

func (f *fakeRunner) Log(_ context.Context, limit int) ([]git.Commit, error) {
	f.record(join("log", itoa(limit)))
	return f.commits, f.err
}

func (f *fakeRunner) FileLog(_ context.Context, file string) ([]git.Commit, error) {
	f.record(join("file-log", file))
	return f.commits, f.err
}

func (f *fakeRunner) Blame(_ context.Context, file string) ([]git.BlameLine, error) {
	f.record(join("blame", file))
	return f.blame, f.err
}

func (f *fakeRunner) Stashes(context.Context) ([]git.Stash, error) { return f.stashes, f.err }

func (f *fakeRunner) StashPush(_ context.Context, message string, includeUntracked bool) (string, error) {
	f.record(join("stash-push", message, boolArg(includeUntracked)))
	return f.summary, f.err
}

func (f *fakeRunner) StashPop(_ context.Context, index int) (string, error) {
	f.record(join("stash-pop", itoa(index)))
	return f.summary, f.err
}

func (f *fakeRunner) StashApply(_ context.Context, index int) (string, error) {
	f.record(join("stash-apply", itoa(index)))
	return f.summary, f.err
}

func (f *fakeRunner) StashDrop(_ context.Context, index int) (string, error) {
	f.record(join("stash-drop", itoa(index)))
	return f.summary, f.err
}

func (f *fakeRunner) Tags(context.Context) ([]git.Tag, error) { return f.tags, f.err }

func (f *fakeRunner) CreateTag(_ context.Context, name, message string) error {
	f.record(join("create-tag", name, message))
	return f.err
}

func (f *fakeRunner) DeleteTag(_ context.Context, name string) error {
	f.record(join("delete-tag", name))
	return f.err
}

func (f *fakeRunner) PushTag(_ context.Context, name string) error {
	f.record(join("push-tag", name))
	return f.err
}

func (f *fakeRunner) DeleteRemoteTag(_ context.Context, name string) error {
	f.record(join("delete-remote-tag", name))
	return f.err
}

func (f *fakeRunner) CommitsSinceTag(_ context.Context, tag string) ([]string, error) {
	f.record(join("since", tag))
	return f.since, f.err
}

// cliResult is the captured outcome of one command run.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs gitdeck with args against repo. GITDECK_HOME points at a
// temp directory so logs and global config never touch the real home.
func runCLI(t *testing.T, repo git.Runner, args ...string) cliResult {
	t.Helper()

	t.Setenv(config.HomeEnvVar, t.TempDir())
	t.Setenv("NO_COLOR", "1")

	original := repoOpener
	repoOpener = func(context.Context, string, *config.Config) (git.Runner, error) {
		return repo, nil
	}
	t.Cleanup(func() { repoOpener = original })

	if fr, ok := repo.(*fakeRunner); ok {
		if fr.path == "" {
			fr.path = t.TempDir()
		}
		args = append([]string{"-C", fr.path}, args...)
	}

	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), BuildInfo{Version: "1.2.3"}, args, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// runCLIWithoutRepo runs gitdeck for commands that never open a repository.
func runCLIWithoutRepo(t *testing.T, args ...string) cliResult {
	t.Helper()

	if os.Getenv(config.HomeEnvVar) == "" {
		t.Setenv(config.HomeEnvVar, t.TempDir())
	}
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), BuildInfo{Version: "1.2.3"}, args, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// mockTerminalCheckFunc replaces terminalCheck; the returned func restores it.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockConfirm replaces confirmPrompt with a fixed answer and counts prompts.
func mockConfirm(t *testing.T, answer bool, err error) *int {
	t.Helper()
	count := 0
	original := confirmPrompt
	confirmPrompt = func(string, string) (bool, error) {
		count++
		return answer, err
	}
	t.Cleanup(func() { confirmPrompt = original })
	return &count
}

func (f *fakeRunner) requireCalls(t *testing.T, want ...string) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, want, f.calls)
}

func join(op string, args ...string) string {
	out := op
	for _, a := range args {
		out += " " + a
	}
	return out
}

func boolArg(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
