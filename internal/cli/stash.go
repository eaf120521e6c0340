package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/errors"
	"github.com/mrz1836/gitdeck/internal/git"
)

// AddStashCommand adds the stash command group.
func AddStashCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "stash",
		Short: "Save, list, and restore stashed changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStashList(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stash entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStashList(cmd, flags)
		},
	})
	cmd.AddCommand(newStashPushCmd(flags))
	cmd.AddCommand(newStashIndexCmd(flags, "pop", "Apply a stash entry and remove it", false,
		func(s *session, i int) (string, error) { return s.repo.StashPop(s.ctx, i) }))
	cmd.AddCommand(newStashIndexCmd(flags, "apply", "Apply a stash entry and keep it", false,
		func(s *session, i int) (string, error) { return s.repo.StashApply(s.ctx, i) }))
	cmd.AddCommand(newStashIndexCmd(flags, "drop", "Delete a stash entry", true,
		func(s *session, i int) (string, error) { return s.repo.StashDrop(s.ctx, i) }))

	root.AddCommand(cmd)
}

func runStashList(cmd *cobra.Command, flags *GlobalFlags) error {
	s, err := newSession(cmd, flags)
	if err != nil {
		return err
	}
	stashes, err := s.repo.Stashes(s.ctx)
	if err != nil {
		return err
	}
	if flags.Output == OutputJSON {
		return s.out.JSON(nonNil(stashes))
	}
	if len(stashes) == 0 {
		s.out.Info("No stash entries")
		return nil
	}
	rows := make([][]string, 0, len(stashes))
	for _, st := range stashes {
		rows = append(rows, []string{st.Reference, st.Hash, st.Message})
	}
	s.out.Table([]string{"STASH", "COMMIT", "MESSAGE"}, rows)
	return nil
}

func newStashPushCmd(flags *GlobalFlags) *cobra.Command {
	var (
		message   string
		untracked bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Stash local changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := s.repo.StashPush(s.ctx, message, untracked)
			if err != nil {
				return err
			}
			return printSummary(s, flags, summary)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "stash message")
	cmd.Flags().BoolVarP(&untracked, "include-untracked", "u", false, "also stash untracked files")
	return cmd
}

// newStashIndexCmd builds pop/apply/drop. The index argument defaults to 0.
func newStashIndexCmd(flags *GlobalFlags, use, short string, destructive bool, op func(*session, int) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [index]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := stashIndexArg(args)
			if err != nil {
				return err
			}
			if destructive {
				if err := confirmDestructive(flags,
					fmt.Sprintf("Drop %s?", git.StashRef(index)),
					"The stashed changes will be lost."); err != nil {
					return err
				}
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := op(s, index)
			if err != nil {
				return err
			}
			return printSummary(s, flags, summary)
		},
	}
}

func stashIndexArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return 0, fmt.Errorf("stash index %q must be a non-negative integer: %w", args[0], errors.ErrInvalidArgument)
	}
	return index, nil
}

// printSummary shows git's own message for commands whose only result is chatter.
func printSummary(s *session, flags *GlobalFlags, summary string) error {
	if flags.Output == OutputJSON {
		return s.out.JSON(map[string]string{"summary": summary})
	}
	if summary == "" {
		s.out.Success("Done")
		return nil
	}
	s.out.Text(summary)
	return nil
}
