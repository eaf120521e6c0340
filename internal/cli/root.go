package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/gitdeck/internal/errors"
	"github.com/mrz1836/gitdeck/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates the root command for the gitdeck CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "gitdeck",
		Short: "A git workbench for the terminal",
		Long: `gitdeck wraps the git executable with structured, scriptable views of a
repository: status, branches, history, blame, stashes, tags, worktrees, and
remotes, plus GitHub releases.

Every listing can be printed as JSON with --output json.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			logger := InitLogger(flags.Verbose, flags.Quiet)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddVersionCommand(cmd, flags, info)
	AddStatusCommands(cmd, flags)
	AddBranchCommand(cmd, flags)
	AddHistoryCommands(cmd, flags)
	AddTagCommand(cmd, flags)
	AddStashCommand(cmd, flags)
	AddWorktreeCommand(cmd, flags)
	AddRemoteCommands(cmd, flags)
	AddCloneCommand(cmd, flags)
	AddGitHubCommand(cmd, flags)
	AddConfigCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are reported on stderr in the selected output format before being
// returned; use ExitCodeForError to turn the result into a process status.
func Execute(ctx context.Context, info BuildInfo) error {
	return execute(ctx, info, os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, info BuildInfo, args []string, stdout, stderr io.Writer) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	defer CloseLogFile()
	if err != nil {
		format := flags.Output
		if !IsValidOutputFormat(format) {
			format = OutputText
		}
		tui.NewOutput(stderr, format).Error(err)
	}
	return err
}
