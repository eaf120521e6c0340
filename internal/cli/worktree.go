package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/git"
)

// AddWorktreeCommand adds the worktree command group.
func AddWorktreeCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "worktree",
		Short: "List, add, and remove worktrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorktreeList(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List worktrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorktreeList(cmd, flags)
		},
	})
	cmd.AddCommand(newWorktreeAddCmd(flags))
	cmd.AddCommand(newWorktreeRemoveCmd(flags))

	root.AddCommand(cmd)
}

func runWorktreeList(cmd *cobra.Command, flags *GlobalFlags) error {
	s, err := newSession(cmd, flags)
	if err != nil {
		return err
	}
	worktrees, err := s.repo.Worktrees(s.ctx)
	if err != nil {
		return err
	}
	if flags.Output == OutputJSON {
		return s.out.JSON(nonNil(worktrees))
	}
	s.out.Table([]string{"PATH", "BRANCH", "COMMIT", "FLAGS"}, worktreeRows(worktrees))
	return nil
}

func worktreeRows(worktrees []git.Worktree) [][]string {
	rows := make([][]string, 0, len(worktrees))
	for _, wt := range worktrees {
		branch := wt.Branch
		if branch == "" {
			branch = "(detached)"
		}
		var marks []string
		if wt.IsMain {
			marks = append(marks, "main")
		}
		if wt.Locked {
			marks = append(marks, "locked")
		}
		if wt.Prunable {
			marks = append(marks, "prunable")
		}
		rows = append(rows, []string{wt.Path, branch, wt.Commit, strings.Join(marks, ",")})
	}
	return rows
}

func newWorktreeAddCmd(flags *GlobalFlags) *cobra.Command {
	var newBranch bool

	cmd := &cobra.Command{
		Use:   "add <path> <branch>",
		Short: "Check out a branch in a new worktree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.AddWorktree(s.ctx, args[0], args[1], newBranch); err != nil {
				return err
			}
			s.out.Success(fmt.Sprintf("Added worktree %s on %s", args[0], args[1]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&newBranch, "new-branch", "b", false, "create the branch")
	return cmd
}

func newWorktreeRemoveCmd(flags *GlobalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a worktree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := confirmDestructive(flags,
				fmt.Sprintf("Remove worktree '%s'?", path),
				"The directory is deleted. Uncommitted changes are lost with --force."); err != nil {
				return err
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.RemoveWorktree(s.ctx, path, force); err != nil {
				return err
			}
			s.out.Success("Removed worktree " + path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "remove even with local changes")
	return cmd
}
