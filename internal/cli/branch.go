package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/git"
)

// AddBranchCommand adds the branch command group.
func AddBranchCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "List, switch, create, and delete branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBranchList(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List local branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBranchList(cmd, flags)
		},
	})
	cmd.AddCommand(newBranchSwitchCmd(flags))
	cmd.AddCommand(newBranchCreateCmd(flags))
	cmd.AddCommand(newBranchDeleteCmd(flags))

	root.AddCommand(cmd)
}

func runBranchList(cmd *cobra.Command, flags *GlobalFlags) error {
	s, err := newSession(cmd, flags)
	if err != nil {
		return err
	}
	branches, err := s.repo.Branches(s.ctx)
	if err != nil {
		return err
	}
	if flags.Output == OutputJSON {
		return s.out.JSON(nonNil(branches))
	}
	s.out.Table([]string{"", "BRANCH", "UPSTREAM"}, branchRows(branches))
	return nil
}

func branchRows(branches []git.Branch) [][]string {
	rows := make([][]string, 0, len(branches))
	for _, b := range branches {
		marker := ""
		if b.Current {
			marker = "*"
		}
		upstream := ""
		if b.Upstream != nil {
			upstream = *b.Upstream
		}
		rows = append(rows, []string{marker, b.Name, upstream})
	}
	return rows
}

func newBranchSwitchCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "switch <name>",
		Aliases: []string{"checkout"},
		Short:   "Switch to an existing branch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.SwitchBranch(s.ctx, args[0]); err != nil {
				return err
			}
			s.out.Success("Switched to " + args[0])
			return nil
		},
	}
}

func newBranchCreateCmd(flags *GlobalFlags) *cobra.Command {
	var checkout bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch at HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.CreateBranch(s.ctx, args[0], checkout); err != nil {
				return err
			}
			if checkout {
				s.out.Success("Created and switched to " + args[0])
			} else {
				s.out.Success("Created " + args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkout, "checkout", false, "switch to the new branch")
	return cmd
}

func newBranchDeleteCmd(flags *GlobalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if force {
				if err := confirmDestructive(flags,
					fmt.Sprintf("Force delete branch '%s'?", name),
					"Commits not merged elsewhere will be lost."); err != nil {
					return err
				}
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.DeleteBranch(s.ctx, name, force); err != nil {
				return err
			}
			s.out.Success("Deleted " + name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete even if not merged (git branch -D)")
	return cmd
}
