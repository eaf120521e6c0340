package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/gitdeck/internal/errors"
	"github.com/mrz1836/gitdeck/internal/git"
	"github.com/mrz1836/gitdeck/internal/tui"
)

// AddCloneCommand adds the clone command.
func AddCloneCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(&cobra.Command{
		Use:   "clone <url> [directory]",
		Short: "Clone a repository, showing git's progress",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			base, err := workDir(flags)
			if err != nil {
				return err
			}

			url := args[0]
			dest := ""
			if len(args) == 2 {
				dest = args[1]
			} else if dest = repoDirFromURL(url); dest == "" {
				return fmt.Errorf("cannot derive a directory name from %q: %w", url, errors.ErrInvalidArgument)
			}
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(base, dest)
			}

			var progress git.ProgressFunc
			var line *tui.ProgressLine
			if flags.Output == OutputText && !flags.Quiet {
				stderr := cmd.ErrOrStderr()
				line = tui.NewProgressLine(stderr, isTerminalWriter(stderr))
				progress = line.Update
			}

			path, err := git.Clone(cmd.Context(), cfg.Git.Binary, url, dest, progress)
			if line != nil {
				line.Done()
			}
			if err != nil {
				return err
			}

			out := newOutput(cmd, flags)
			if flags.Output == OutputJSON {
				return out.JSON(map[string]string{"path": path})
			}
			out.Success("Cloned into " + path)
			return nil
		},
	})
}

// repoDirFromURL returns the directory git would pick for url: the last path
// element without a trailing .git.
func repoDirFromURL(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
