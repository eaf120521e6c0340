//go:build unix

package flock_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitdeck/internal/flock"
)

func TestTryLock(t *testing.T) {
	t.Parallel()

	t.Run("acquires a new lock file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "test.lock")

		lock, err := flock.TryLock(path)
		require.NoError(t, err)
		assert.FileExists(t, path)
		require.NoError(t, lock.Release())
	})

	t.Run("second holder is refused", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "test.lock")

		first, err := flock.TryLock(path)
		require.NoError(t, err)
		defer func() { _ = first.Release() }()

		_, err = flock.TryLock(path)
		require.ErrorIs(t, err, flock.ErrLocked)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("reacquired after release", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "test.lock")

		first, err := flock.TryLock(path)
		require.NoError(t, err)
		require.NoError(t, first.Release())

		second, err := flock.TryLock(path)
		require.NoError(t, err)
		require.NoError(t, second.Release())
	})

	t.Run("release is idempotent", func(t *testing.T) {
		t.Parallel()
		lock, err := flock.TryLock(filepath.Join(t.TempDir(), "test.lock"))
		require.NoError(t, err)

		require.NoError(t, lock.Release())
		require.NoError(t, lock.Release())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := flock.TryLock(filepath.Join(t.TempDir(), "nope", "test.lock"))
		require.Error(t, err)
		require.NotErrorIs(t, err, flock.ErrLocked)
	})
}
