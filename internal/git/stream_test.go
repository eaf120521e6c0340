package git

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

// collector records progress fragments from the reader goroutine.
type collector struct {
	mu    sync.Mutex
	lines []string
}

func (c *collector) add(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

func (c *collector) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func TestSplitProgress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain lines", "one\ntwo\n", []string{"one", "two"}},
		{"carriage return overwrites", "Receiving objects:  10%\rReceiving objects:  50%\rReceiving objects: 100%, done.\n", []string{"Receiving objects:  10%", "Receiving objects:  50%", "Receiving objects: 100%, done."}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"whitespace only fragments dropped", "  \r\t\n\n x \n", []string{"x"}},
		{"empty", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitProgress(tc.in))
		})
	}
}

// chunkReader hands out its data in fixed-size pieces to exercise
// fragments that straddle reads.
type chunkReader struct {
	data []byte
	size int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := min(r.size, len(p), len(r.data))
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func TestDrainProgress_ChunkBoundariesDoNotSplitFragments(t *testing.T) {
	raw := "Counting objects: 1\rCounting objects: 2\rCounting objects: 3, done.\nfatal: unable to access 'x'\nunterminated tail"
	var c collector

	last, err := drainProgress(&chunkReader{data: []byte(raw), size: 3}, c.add)

	require.NoError(t, err)
	assert.Equal(t, SplitProgress(raw), c.all())
	assert.Equal(t, "unterminated tail", last)
}

func TestDrainProgress_ReconstructsNormalizedStream(t *testing.T) {
	word := rapid.StringMatching(`[A-Za-z0-9:%,. ]{0,12}`)
	sep := rapid.SampledFrom([]string{"\n", "\r", "\r\n"})

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString(word.Draw(t, "word"))
			b.WriteString(sep.Draw(t, "sep"))
		}
		raw := b.String()
		size := rapid.IntRange(1, 16).Draw(t, "chunk")

		var got []string
		last, err := drainProgress(&chunkReader{data: []byte(raw), size: size}, func(s string) { got = append(got, s) })
		if err != nil {
			t.Fatal(err)
		}

		want := SplitProgress(raw)
		if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
			t.Fatalf("fragments %q, want %q", got, want)
		}
		if len(want) > 0 && last != want[len(want)-1] {
			t.Fatalf("last %q, want %q", last, want[len(want)-1])
		}
	})
}

func TestDrainProgress_NilSink(t *testing.T) {
	last, err := drainProgress(strings.NewReader("a\rb\n"), nil)

	require.NoError(t, err)
	assert.Equal(t, "b", last)
}

var errBrokenPipe = errors.New("broken pipe")

type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errBrokenPipe
	}
	r.sent = true
	return copy(p, "partial"), nil
}

func TestDrainProgress_ReadErrorFlushesPending(t *testing.T) {
	last, err := drainProgress(&failingReader{}, nil)

	require.ErrorIs(t, err, errBrokenPipe)
	assert.Equal(t, "partial", last)
}

func TestStream_ForwardsStderrAndDiscardsStdout(t *testing.T) {
	requireShell(t)
	var c collector

	res, err := Stream(context.Background(), "sh", "",
		[]string{"-c", `echo ignored; printf 'step 1\rstep 2\rstep 3\ndone\n' >&2`}, c.add)

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, []string{"step 1", "step 2", "step 3", "done"}, c.all())
	assert.Equal(t, "done", res.LastLine)
}

func TestStream_FailureKeepsLastLine(t *testing.T) {
	requireShell(t)

	res, err := Stream(context.Background(), "sh", "",
		[]string{"-c", `printf 'working\rfatal: repository not found\n' >&2; exit 128`}, nil)

	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Equal(t, 128, res.ExitCode)
	assert.Equal(t, "fatal: repository not found", res.LastLine)
}

func TestStream_LargeOutputDoesNotStall(t *testing.T) {
	requireShell(t)
	var count int

	res, err := Stream(context.Background(), "sh", "",
		[]string{"-c", `i=0; while [ $i -lt 20000 ]; do printf 'progress %d\r' $i >&2; i=$((i+1)); done; echo end >&2`},
		func(string) { count++ })

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.Equal(t, 20001, count)
	assert.Equal(t, "end", res.LastLine)
}

func TestStream_LaunchFailure(t *testing.T) {
	_, err := Stream(context.Background(), "gitdeck-no-such-binary", "", nil, nil)

	require.ErrorIs(t, err, deckerrors.ErrGitLaunch)
}

func TestStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Stream(ctx, "git", "", []string{"--version"}, nil)

	require.ErrorIs(t, err, context.Canceled)
}

func TestStream_TimeoutWithHelperHoldingStderr(t *testing.T) {
	requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Stream(ctx, "sh", "", []string{"-c", "echo cloning >&2; sleep 3; true"}, nil)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClone(t *testing.T) {
	src := createTestGitRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(src, "README.md"), []byte("hi\n"), 0o600))
	runGit(t, src, "add", "README.md")
	runGit(t, src, "commit", "-q", "-m", "init")

	t.Run("success returns destination", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "copy")
		var c collector

		got, err := Clone(context.Background(), "", src, dest, c.add)

		require.NoError(t, err)
		assert.Equal(t, dest, got)
		assert.FileExists(t, filepath.Join(dest, "README.md"))
	})

	t.Run("failure reports git's last line", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "copy")

		_, err := Clone(context.Background(), "", filepath.Join(t.TempDir(), "missing"), dest, nil)

		require.ErrorIs(t, err, deckerrors.ErrCloneFailed)
		var cloneErr *CloneError
		require.ErrorAs(t, err, &cloneErr)
		assert.NotEmpty(t, cloneErr.LastLine)
		assert.Equal(t, cloneErr.LastLine, err.Error())
		assert.NotZero(t, cloneErr.ExitCode)
	})
}

func TestCloneError_Fallback(t *testing.T) {
	err := &CloneError{ExitCode: 128}

	assert.Equal(t, "git clone failed", err.Error())
	assert.ErrorIs(t, err, deckerrors.ErrCloneFailed)
}
