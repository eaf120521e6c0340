package git

import (
	"fmt"
	"strings"

	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

// Sentinels re-exported from internal/errors for convenience.
//
//nolint:gochecknoglobals // Re-exported sentinels
var (
	ErrGitLaunch    = deckerrors.ErrGitLaunch
	ErrGitOperation = deckerrors.ErrGitOperation
	ErrCloneFailed  = deckerrors.ErrCloneFailed
	ErrNotGitRepo   = deckerrors.ErrNotGitRepo
)

// launchHint is appended to launch failures.
const launchHint = "Is git installed and available in PATH?"

// CommandError reports a git process that started but exited unsuccessfully.
// Its message is git's own stderr, trimmed.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	sub := "git"
	if len(e.Args) > 0 {
		sub = "git " + e.Args[0]
	}
	return fmt.Sprintf("%s exited with code %d", sub, e.ExitCode)
}

// Unwrap lets errors.Is(err, ErrGitOperation) match.
func (e *CommandError) Unwrap() error {
	return deckerrors.ErrGitOperation
}

// CloneError reports a failed streamed clone. LastLine is the final progress
// fragment git printed, which is where it puts its diagnostic.
type CloneError struct {
	LastLine string
	ExitCode int
}

func (e *CloneError) Error() string {
	if e.LastLine == "" {
		return "git clone failed"
	}
	return e.LastLine
}

// Unwrap lets errors.Is(err, ErrCloneFailed) match.
func (e *CloneError) Unwrap() error {
	return deckerrors.ErrCloneFailed
}

// Err converts an unsuccessful result into a *CommandError. It returns nil
// when the command succeeded.
func (r *Result) Err() error {
	if r.Succeeded {
		return nil
	}
	return &CommandError{Args: r.args, ExitCode: r.ExitCode, Stderr: r.Stderr}
}

// errWithOutput is Err with stdout folded into the message. Stash and
// worktree commands report conflicts and refusals on stdout.
func (r *Result) errWithOutput() error {
	if r.Succeeded {
		return nil
	}
	msg := joinNonEmpty(strings.TrimSpace(r.Stdout), strings.TrimSpace(r.Stderr))
	return &CommandError{Args: r.args, ExitCode: r.ExitCode, Stderr: msg}
}

func launchError(binary string, err error) error {
	return fmt.Errorf("%w %q: %w. %s", deckerrors.ErrGitLaunch, binary, err, launchHint)
}
