package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{ErrorTypeUnknown, "unknown"},
		{ErrorTypeEmptyRepository, "empty_repository"},
		{ErrorTypeAuth, "authentication"},
		{ErrorTypeNetwork, "network"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeNonFastForward, "non_fast_forward"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		errStr   string
		expected ErrorType
	}{
		{"empty - no commits", "fatal: your current branch 'main' does not have any commits yet", ErrorTypeEmptyRepository},
		{"empty - bad default revision", "fatal: bad default revision 'HEAD'", ErrorTypeEmptyRepository},
		{"empty - unknown revision", "fatal: ambiguous argument 'v9..HEAD': unknown revision or path not in the working tree.", ErrorTypeEmptyRepository},
		{"auth - failed", "fatal: Authentication failed for 'https://github.com/x/y.git/'", ErrorTypeAuth},
		{"auth - publickey", "git@github.com: Permission denied (publickey).", ErrorTypeAuth},
		{"network - resolve", "fatal: unable to access 'https://x/': Could not resolve host: x", ErrorTypeNetwork},
		{"non fast forward", "! [rejected] main -> main (fetch first)\nerror: failed to push some refs", ErrorTypeNonFastForward},
		{"not found", "ERROR: Repository not found.", ErrorTypeNotFound},
		{"unknown", "fatal: index file corrupt", ErrorTypeUnknown},
		{"empty string", "", ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyError(tt.errStr))
		})
	}
}

func TestClassifyError_EmptyRepositoryWins(t *testing.T) {
	// "unknown revision" also reads as not-found text; the empty case is checked first.
	assert.Equal(t, ErrorTypeEmptyRepository, ClassifyError("fatal: unknown revision: path does not exist"))
}

func TestPatternMatcher(t *testing.T) {
	m := NewPatternMatcher("foo", "bar baz")

	assert.True(t, m.Matches("xx FOO yy"))
	assert.True(t, m.Matches("Bar Baz"))
	assert.False(t, m.Matches("ba r"))
	assert.True(t, m.MatchesLower("foo"))
	assert.False(t, m.MatchesLower("FOO"), "MatchesLower expects lowercase input")
}

func TestIsEmptyRepositoryError(t *testing.T) {
	assert.True(t, IsEmptyRepositoryError("fatal: your current branch 'main' does not have any commits yet\n"))
	assert.True(t, IsEmptyRepositoryError("fatal: Bad default revision 'HEAD'"))
	assert.False(t, IsEmptyRepositoryError("fatal: not a git repository"))
}

func TestCollectOrEmpty(t *testing.T) {
	t.Run("success parses stdout", func(t *testing.T) {
		res := &Result{Succeeded: true, Stdout: "a\nb\n"}

		got, err := CollectOrEmpty(res, ParseOneline)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("success with no records is an empty slice", func(t *testing.T) {
		got, err := CollectOrEmpty(&Result{Succeeded: true}, ParseLog)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("benign failure becomes empty success", func(t *testing.T) {
		res := &Result{ExitCode: 128, Stderr: "fatal: your current branch 'main' does not have any commits yet\n"}

		got, err := CollectOrEmpty(res, ParseLog)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("other failures propagate trimmed stderr", func(t *testing.T) {
		res := &Result{ExitCode: 128, Stderr: "\n  fatal: not a git repository  \n", args: []string{"log"}}

		got, err := CollectOrEmpty(res, ParseLog)

		assert.Nil(t, got)
		require.ErrorIs(t, err, deckerrors.ErrGitOperation)
		assert.Equal(t, "fatal: not a git repository", err.Error())
	})
}
