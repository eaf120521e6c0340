// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled reports whether ctx is already done, returning its error if so.
// Git operations call it before spawning a child so a canceled caller never
// starts a process.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
