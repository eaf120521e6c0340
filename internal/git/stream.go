package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/gitdeck/internal/constants"
	"github.com/mrz1836/gitdeck/internal/ctxutil"
	"github.com/mrz1836/gitdeck/internal/logging"
)

// ProgressFunc receives one progress fragment at a time. It is called from
// the reader goroutine and must not block for long.
type ProgressFunc func(line string)

// StreamResult is the outcome of a streamed invocation.
type StreamResult struct {
	Succeeded bool
	ExitCode  int
	LastLine  string // last non-empty fragment seen on stderr
}

const progressBufSize = 4096

// Stream runs binary with args and forwards its stderr to progress as it is
// written. Stdout is discarded.
//
// Git redraws progress lines with carriage returns, so text is split on
// line feeds and then on carriage returns; each trimmed, non-empty fragment
// is passed to progress. A reader goroutine drains the pipe while the
// calling goroutine waits for the process. Both are joined before Stream
// returns, so LastLine always reflects the full stream.
//
// Canceling ctx kills the child. The pipe then reaches EOF once every
// process holding its write end has exited.
func Stream(ctx context.Context, binary, dir string, args []string, progress ProgressFunc) (*StreamResult, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	cmd := exec.CommandContext(ctx, binary, args...) //#nosec G204 -- argument vectors are built by this package
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stderr = pw
	cmd.Env = childEnv()

	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return nil, launchError(binary, err)
	}
	// The child holds its own copy of the write end.
	_ = pw.Close()

	var last string
	var g errgroup.Group
	g.Go(func() error {
		defer func() { _ = pr.Close() }()
		var readErr error
		last, readErr = drainProgress(pr, progress)
		return readErr
	})

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		// A killed child's helpers may still hold the write end.
		_ = pr.Close()
	}
	if readErr := g.Wait(); readErr != nil {
		zerolog.Ctx(ctx).Warn().Err(readErr).Msg("progress stream ended early")
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &StreamResult{LastLine: last}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("failed waiting for %s: %w", binary, waitErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	res.Succeeded = waitErr == nil

	zerolog.Ctx(ctx).Debug().
		Strs("args", logging.RedactArgs(args)).
		Int("exit_code", res.ExitCode).
		Str("last_line", logging.FilterSensitiveValue(last)).
		Msg("streamed git command finished")

	return res, nil
}

// drainProgress reads r to EOF, emitting fragments as complete segments
// arrive. Unterminated text is held back until its terminator or EOF.
func drainProgress(r io.Reader, progress ProgressFunc) (string, error) {
	var last string
	emit := func(chunk []byte) {
		for _, frag := range SplitProgress(decodeOutput(chunk)) {
			if progress != nil {
				progress(frag)
			}
			last = frag
		}
	}

	buf := make([]byte, progressBufSize)
	var pending []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			if i := bytes.LastIndexAny(pending, "\r\n"); i >= 0 {
				emit(pending[:i+1])
				pending = append(pending[:0], pending[i+1:]...)
			}
		}
		if err != nil {
			if len(pending) > 0 {
				emit(pending)
			}
			if errors.Is(err, io.EOF) {
				return last, nil
			}
			return last, err
		}
	}
}

// SplitProgress splits progress text on line feeds, then each line on
// carriage returns, and returns the trimmed non-empty fragments in order.
func SplitProgress(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for _, seg := range strings.Split(line, "\r") {
			if frag := strings.TrimSpace(seg); frag != "" {
				out = append(out, frag)
			}
		}
	}
	return out
}

// Clone runs `git clone --progress` and streams its progress to progress.
// An empty binary uses the default git executable. On success it returns
// dest. On failure it returns a *CloneError whose message is the last line
// git printed.
func Clone(ctx context.Context, binary, url, dest string, progress ProgressFunc) (string, error) {
	if binary == "" {
		binary = constants.DefaultGitBinary
	}

	zerolog.Ctx(ctx).Info().
		Str("url", logging.FilterSensitiveValue(url)).
		Str("dest", dest).
		Msg("cloning repository")

	res, err := Stream(ctx, binary, "", []string{"clone", "--progress", "--", url, dest}, progress)
	if err != nil {
		return "", err
	}
	if !res.Succeeded {
		return "", &CloneError{LastLine: res.LastLine, ExitCode: res.ExitCode}
	}
	return dest, nil
}
