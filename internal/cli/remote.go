package cli

import (
	"github.com/spf13/cobra"
)

// AddRemoteCommands adds remote, push, pull, and fetch.
func AddRemoteCommands(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(&cobra.Command{
		Use:   "remote",
		Short: "List configured remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			remotes, err := s.repo.Remotes(s.ctx)
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return s.out.JSON(nonNil(remotes))
			}
			rows := make([][]string, 0, len(remotes))
			for _, r := range remotes {
				rows = append(rows, []string{r.Name, r.URL})
			}
			s.out.Table([]string{"REMOTE", "URL"}, rows)
			return nil
		},
	})

	root.AddCommand(newPushCmd(flags))

	root.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Merge the upstream of the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := s.repo.Pull(s.ctx)
			if err != nil {
				return err
			}
			return printSummary(s, flags, summary)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Fetch all remotes and prune deleted refs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := s.repo.Fetch(s.ctx)
			if err != nil {
				return err
			}
			return printSummary(s, flags, summary)
		},
	})
}

func newPushCmd(flags *GlobalFlags) *cobra.Command {
	var setUpstream bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			summary, err := s.repo.Push(s.ctx, setUpstream)
			if err != nil {
				return err
			}
			return printSummary(s, flags, summary)
		},
	}

	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "publish the branch and track it")
	return cmd
}
