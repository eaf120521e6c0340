// Package git provides git operations for gitdeck.
// This file provides the subprocess primitive every operation is built on.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/gitdeck/internal/constants"
	"github.com/mrz1836/gitdeck/internal/ctxutil"
	"github.com/mrz1836/gitdeck/internal/logging"
)

// Invoke runs binary with args in dir and captures its output.
//
// An empty dir runs the child in the caller's working directory, which is
// what directory-independent queries such as `git --version` need.
// Invoke returns an error only when the process could not be started (or ctx
// was canceled); a non-zero exit is reported through Result.Succeeded and
// Result.ExitCode because some subcommands use exit codes to mean
// "differences found" rather than failure.
func Invoke(ctx context.Context, binary, dir string, args ...string) (*Result, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	start := time.Now()

	cmd := exec.CommandContext(ctx, binary, args...) //#nosec G204 -- argument vectors are built by this package
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = childEnv()
	cmd.WaitDelay = constants.GitWaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	res := &Result{
		Stdout: decodeOutput(stdout.Bytes()),
		Stderr: decodeOutput(stderr.Bytes()),
		args:   args,
	}

	if runErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		switch {
		case errors.As(runErr, &exitErr):
			res.ExitCode = exitErr.ExitCode()
		case errors.Is(runErr, exec.ErrWaitDelay) && cmd.ProcessState != nil:
			// The child exited but something it spawned kept the pipes open.
			res.ExitCode = cmd.ProcessState.ExitCode()
			runErr = nil
		default:
			zerolog.Ctx(ctx).Debug().
				Str("invocation_id", id).
				Strs("args", logging.RedactArgs(args)).
				Err(runErr).
				Msg("git failed to start")
			return nil, launchError(binary, runErr)
		}
	}
	res.Succeeded = res.ExitCode == 0 && runErr == nil

	zerolog.Ctx(ctx).Debug().
		Str("invocation_id", id).
		Str("dir", dir).
		Strs("args", logging.RedactArgs(args)).
		Int("exit_code", res.ExitCode).
		Dur("duration", time.Since(start)).
		Msg("git command finished")

	return res, nil
}

// Exec runs the default git binary. See Invoke.
func Exec(ctx context.Context, dir string, args ...string) (*Result, error) {
	return Invoke(ctx, constants.DefaultGitBinary, dir, args...)
}

// RunCommand executes a git command in dir and returns its trimmed stdout.
// A non-zero exit becomes a *CommandError carrying git's stderr.
func RunCommand(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := Exec(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// childEnv is the caller's environment with the locale pinned, so the
// English messages ClassifyError matches are what git prints.
func childEnv() []string {
	return append(os.Environ(), "LC_ALL="+constants.GitLocale)
}

// decodeOutput converts raw child output to text, replacing invalid UTF-8.
func decodeOutput(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
