//go:build unix

package flock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitdeck.log.lock")

	open := func() *os.File {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })
		return f
	}
	first, second := open(), open()

	require.NoError(t, lockFile(first))
	assert.Equal(t, ErrLocked, lockFile(second))

	require.NoError(t, unlockFile(first))
	require.NoError(t, lockFile(second))
	require.NoError(t, unlockFile(second))
}
