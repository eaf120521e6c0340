// Package main provides the entry point for the gitdeck CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/gitdeck/internal/cli"
	"github.com/mrz1836/gitdeck/internal/signal"
)

// Set via -ldflags at build time.
//
//nolint:gochecknoglobals // Build metadata injected by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	h := signal.NewHandler(context.Background())
	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	interrupted := h.Interrupted()
	h.Stop()

	if interrupted {
		os.Exit(signal.ExitInterrupted)
	}
	os.Exit(cli.ExitCodeForError(err))
}
