package flock

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrLocked is returned by TryLock when another process holds the lock.
var ErrLocked = errors.New("lock is held by another process")

// Lock is an exclusive lock on a lock file. Release it when done.
type Lock struct {
	file *os.File
	once sync.Once
}

// TryLock opens or creates the file at path and takes an exclusive,
// non-blocking lock on it. It fails with ErrLocked when the lock is taken.
func TryLock(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- path is built by the caller from the gitdeck home
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		_ = f.Close()
		if errors.Is(err, ErrLocked) {
			return nil, fmt.Errorf("%s: %w", path, ErrLocked)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return &Lock{file: f}, nil
}

// Release unlocks and closes the lock file. It is safe to call more than once.
func (l *Lock) Release() error {
	var err error
	l.once.Do(func() {
		unlockErr := unlockFile(l.file)
		closeErr := l.file.Close()
		err = errors.Join(unlockErr, closeErr)
	})
	return err
}
