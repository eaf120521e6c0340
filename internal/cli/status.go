package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/errors"
	"github.com/mrz1836/gitdeck/internal/git"
	"github.com/mrz1836/gitdeck/internal/tui"
)

// statusReport is the JSON shape of 'gitdeck status'.
type statusReport struct {
	Branch string           `json:"branch"`
	Files  []git.FileStatus `json:"files"`
}

// AddStatusCommands adds status, stage, unstage, and commit.
func AddStatusCommands(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newStatusCmd(flags))
	root.AddCommand(newStageCmd(flags))
	root.AddCommand(newUnstageCmd(flags))
	root.AddCommand(newCommitCmd(flags))
}

func newStatusCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			branch, err := s.repo.CurrentBranch(s.ctx)
			if err != nil {
				return err
			}
			files, err := s.repo.Status(s.ctx)
			if err != nil {
				return err
			}

			if flags.Output == OutputJSON {
				return s.out.JSON(statusReport{Branch: branch, Files: nonNil(files)})
			}

			if branch != "" {
				s.out.Info("On branch " + branch)
			}
			if len(files) == 0 {
				s.out.Success("Working tree clean")
				return nil
			}
			s.out.Table([]string{"STAGED", "UNSTAGED", "PATH"}, statusRows(files))
			return nil
		},
	}
}

func statusRows(files []git.FileStatus) [][]string {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		path := f.Path
		if f.OriginalPath != "" {
			path = fmt.Sprintf("%s (was %s)", f.Path, f.OriginalPath)
		}
		rows = append(rows, []string{
			statusCell(f.StagedStatus, f.IsStaged),
			statusCell(f.UnstagedStatus, f.IsUnstaged),
			path,
		})
	}
	return rows
}

func statusCell(code string, active bool) string {
	if !active {
		return ""
	}
	return tui.StatusLabel(code)
}

func newStageCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <path>...",
		Short: "Add files to the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.Stage(s.ctx, args); err != nil {
				return err
			}
			s.out.Success(fmt.Sprintf("Staged %d path(s)", len(args)))
			return nil
		},
	}
}

func newUnstageCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unstage <path>...",
		Short: "Remove files from the index, keeping changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.Unstage(s.ctx, args); err != nil {
				return err
			}
			s.out.Success(fmt.Sprintf("Unstaged %d path(s)", len(args)))
			return nil
		},
	}
}

func newCommitCmd(flags *GlobalFlags) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(message) == "" {
				return fmt.Errorf("commit message: %w", errors.ErrEmptyValue)
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := s.repo.Commit(s.ctx, message)
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return s.out.JSON(map[string]string{"summary": summary})
			}
			s.out.Success(firstLine(summary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

// nonNil turns a nil slice into an empty one so JSON shows [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
