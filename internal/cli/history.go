package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/git"
	"github.com/mrz1836/gitdeck/internal/tui"
)

// subjectWidth caps commit subjects in table output.
const subjectWidth = 72

// AddHistoryCommands adds log, file-log, blame, diff, and show.
func AddHistoryCommands(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newLogCmd(flags))
	root.AddCommand(newFileLogCmd(flags))
	root.AddCommand(newBlameCmd(flags))
	root.AddCommand(newDiffCmd(flags))
	root.AddCommand(newShowCmd(flags))
}

func newLogCmd(flags *GlobalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = s.cfg.Git.LogLimit
			}
			commits, err := s.repo.Log(s.ctx, limit)
			if err != nil {
				return err
			}
			return printCommits(s, flags, commits)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of commits (default from git.log_limit)")
	return cmd
}

func newFileLogCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "file-log <file>",
		Short: "Show the history of one file, following renames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			commits, err := s.repo.FileLog(s.ctx, args[0])
			if err != nil {
				return err
			}
			return printCommits(s, flags, commits)
		},
	}
}

func printCommits(s *session, flags *GlobalFlags, commits []git.Commit) error {
	if flags.Output == OutputJSON {
		return s.out.JSON(nonNil(commits))
	}
	if len(commits) == 0 {
		s.out.Info("No commits yet")
		return nil
	}
	rows := make([][]string, 0, len(commits))
	for _, c := range commits {
		rows = append(rows, []string{c.ShortHash, c.Date, c.Author, tui.Truncate(c.Message, subjectWidth)})
	}
	s.out.Table([]string{"COMMIT", "DATE", "AUTHOR", "SUBJECT"}, rows)
	return nil
}

func newBlameCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "blame <file>",
		Short: "Show who last changed each line of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			lines, err := s.repo.Blame(s.ctx, args[0])
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return s.out.JSON(nonNil(lines))
			}
			rows := make([][]string, 0, len(lines))
			for _, l := range lines {
				rows = append(rows, []string{l.Hash, l.Author, l.Date, strconv.Itoa(l.LineNumber), l.Content})
			}
			s.out.Table([]string{"COMMIT", "AUTHOR", "DATE", "LINE", ""}, rows)
			return nil
		},
	}
}

func newDiffCmd(flags *GlobalFlags) *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:   "diff [file]",
		Short: "Show changes in the working tree or index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			diff, err := s.repo.Diff(s.ctx, file, staged)
			if err != nil {
				return err
			}
			return printDiff(s, flags, diff)
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "diff the index against HEAD")
	return cmd
}

func newShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <commit>",
		Short: "Show the patch introduced by a commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			diff, err := s.repo.CommitDiff(s.ctx, args[0])
			if err != nil {
				return err
			}
			return printDiff(s, flags, diff)
		},
	}
}

func printDiff(s *session, flags *GlobalFlags, diff string) error {
	if flags.Output == OutputJSON {
		return s.out.JSON(map[string]string{"diff": diff})
	}
	if diff == "" {
		s.out.Info("No changes")
		return nil
	}
	s.out.Text(diff)
	return nil
}
