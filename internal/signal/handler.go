// Package signal turns SIGINT and SIGTERM into context cancellation for
// gitdeck commands.
//
// The first signal cancels the context. Every git child is started with
// exec.CommandContext, so cancellation kills it and the command returns
// promptly. A second signal means the user is not willing to wait for
// cleanup: the force hook runs, which by default exits with status 130.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ExitInterrupted is the conventional status for a process ended by SIGINT.
const ExitInterrupted = 130

// Handler cancels a context on the first interrupt and calls a force hook on the second.
type Handler struct {
	ctx     context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel  context.CancelFunc
	force   func()
	sigChan chan os.Signal
	done    chan struct{}

	mu       sync.Mutex
	received int
	stopOnce sync.Once
}

// Option configures a Handler.
type Option func(*Handler)

// WithForce replaces the action taken on the second signal.
func WithForce(fn func()) Option {
	return func(h *Handler) { h.force = fn }
}

// NewHandler starts listening for SIGINT and SIGTERM. Call Stop when done.
func NewHandler(parent context.Context, opts ...Option) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:    ctx,
		cancel: cancel,
		force:  func() { os.Exit(ExitInterrupted) },
		// Buffered so signal.Notify never drops a signal while we are busy.
		sigChan: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context canceled by the first signal.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted reports whether at least one signal has been received.
func (h *Handler) Interrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received > 0
}

// Stop stops listening and releases the context. It is safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handleSignal records one signal: the first cancels, the second forces.
func (h *Handler) handleSignal() {
	h.mu.Lock()
	h.received++
	n := h.received
	h.mu.Unlock()

	switch n {
	case 1:
		h.cancel()
	case 2:
		h.force()
	}
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.done:
			return
		case <-h.sigChan:
			h.handleSignal()
		}
	}
}
