package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/gitdeck/internal/config"
	"github.com/mrz1836/gitdeck/internal/errors"
	"github.com/mrz1836/gitdeck/internal/git"
	"github.com/mrz1836/gitdeck/internal/tui"
)

// repoOpener opens the repository a command works on. Tests replace it with a fake.
//
//nolint:gochecknoglobals // Required for test injection of the git runner
var repoOpener = openRepository

// terminalCheck reports whether stdin is interactive. Tests replace it.
//
//nolint:gochecknoglobals // Required for test injection of terminal detection
var terminalCheck = isTerminal

// confirmPrompt asks a yes/no question. Tests replace it.
//
//nolint:gochecknoglobals // Required for test injection of huh forms
var confirmPrompt = tui.Confirm

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func openRepository(ctx context.Context, path string, cfg *config.Config) (git.Runner, error) {
	return git.Open(ctx, path,
		git.WithBinary(cfg.Git.Binary),
		git.WithRemote(cfg.Git.Remote),
		git.WithFileLogLimit(cfg.Git.FileLogLimit),
		git.WithTimeout(cfg.Git.CommandTimeout),
	)
}

// session bundles what a repository command needs.
type session struct {
	ctx  context.Context
	cfg  *config.Config
	repo git.Runner
	out  tui.Output
}

// workDir returns the -C directory, or the process working directory.
func workDir(flags *GlobalFlags) (string, error) {
	if flags.RepoPath != "" {
		return filepath.Abs(flags.RepoPath)
	}
	return os.Getwd()
}

// loadConfig loads configuration for commands that do not need a repository.
func loadConfig(cmd *cobra.Command, flags *GlobalFlags) (*config.Config, error) {
	dir, err := workDir(flags)
	if err != nil {
		return nil, err
	}
	return config.Load(cmd.Context(), dir)
}

// newSession loads configuration and opens the repository containing the
// working directory. Project config is read from the repository root, so when
// the command starts in a subdirectory the config is reloaded once the root
// is known.
func newSession(cmd *cobra.Command, flags *GlobalFlags) (*session, error) {
	ctx := cmd.Context()

	dir, err := workDir(flags)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ctx, dir)
	if err != nil {
		return nil, err
	}

	repo, err := repoOpener(ctx, dir, cfg)
	if err != nil {
		return nil, err
	}

	if root := repo.Path(); root != dir {
		rootCfg, err := config.Load(ctx, root)
		if err != nil {
			return nil, err
		}
		if *rootCfg != *cfg {
			cfg = rootCfg
			if repo, err = repoOpener(ctx, root, cfg); err != nil {
				return nil, err
			}
		}
	}

	return &session{
		ctx:  ctx,
		cfg:  cfg,
		repo: repo,
		out:  newOutput(cmd, flags),
	}, nil
}

func newOutput(cmd *cobra.Command, flags *GlobalFlags) tui.Output {
	return tui.NewOutput(cmd.OutOrStdout(), flags.Output)
}

// confirmDestructive asks before an operation that discards work. --yes skips
// the prompt; without it a non-interactive session fails instead of guessing.
func confirmDestructive(flags *GlobalFlags, title, description string) error {
	if flags.Yes {
		return nil
	}
	if flags.Output == OutputJSON || !terminalCheck() {
		return fmt.Errorf("%s: %w", title, errors.ErrNonInteractiveMode)
	}

	ok, err := confirmPrompt(title, description)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		return errors.ErrOperationCanceled
	}
	return nil
}
