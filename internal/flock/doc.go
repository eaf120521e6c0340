// Package flock provides cross-platform advisory file locks.
//
// gitdeck uses it to give one process at a time ownership of the rotating
// log file, so two concurrent runs never rotate the same file:
//
//	lock, err := flock.TryLock(path)
//	if err != nil {
//	    // another gitdeck process holds it
//	}
//	defer lock.Release()
package flock
