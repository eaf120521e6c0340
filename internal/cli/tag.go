package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/git"
)

// AddTagCommand adds the tag command group.
func AddTagCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "List, create, publish, and delete tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTagList(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List local tags, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTagList(cmd, flags)
		},
	})
	cmd.AddCommand(newTagCreateCmd(flags))
	cmd.AddCommand(newTagNameCmd(flags, "delete", "Delete a local tag", "Deleted tag %s",
		func(s *session, name string) error { return s.repo.DeleteTag(s.ctx, name) }))
	cmd.AddCommand(newTagNameCmd(flags, "push", "Publish a tag to the remote", "Pushed tag %s",
		func(s *session, name string) error { return s.repo.PushTag(s.ctx, name) }))
	cmd.AddCommand(newTagDeleteRemoteCmd(flags))
	cmd.AddCommand(newTagSinceCmd(flags))

	root.AddCommand(cmd)
}

func runTagList(cmd *cobra.Command, flags *GlobalFlags) error {
	s, err := newSession(cmd, flags)
	if err != nil {
		return err
	}
	tags, err := s.repo.Tags(s.ctx)
	if err != nil {
		return err
	}
	if flags.Output == OutputJSON {
		return s.out.JSON(nonNil(tags))
	}
	s.out.Table([]string{"TAG", "COMMIT", "DATE", "MESSAGE"}, tagRows(tags))
	return nil
}

func tagRows(tags []git.Tag) [][]string {
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		msg := ""
		if t.Message != nil {
			msg = *t.Message
		}
		rows = append(rows, []string{t.Name, t.CommitHash, t.Date, msg})
	}
	return rows
}

func newTagCreateCmd(flags *GlobalFlags) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an annotated tag at HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if message == "" {
				message = args[0]
			}
			if err := s.repo.CreateTag(s.ctx, args[0], message); err != nil {
				return err
			}
			s.out.Success("Created tag " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "tag message (defaults to the tag name)")
	return cmd
}

// newTagNameCmd builds a subcommand that takes one tag name and runs op on it.
func newTagNameCmd(flags *GlobalFlags, use, short, done string, op func(*session, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := op(s, args[0]); err != nil {
				return err
			}
			s.out.Success(fmt.Sprintf(done, args[0]))
			return nil
		},
	}
}

func newTagDeleteRemoteCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-remote <name>",
		Short: "Delete a tag from the remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := confirmDestructive(flags,
				fmt.Sprintf("Delete tag '%s' from the remote?", name),
				"Anyone fetching afterwards will no longer see it."); err != nil {
				return err
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			if err := s.repo.DeleteRemoteTag(s.ctx, name); err != nil {
				return err
			}
			s.out.Success(fmt.Sprintf("Deleted tag %s from %s", name, s.cfg.Git.Remote))
			return nil
		},
	}
}

func newTagSinceCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "since [tag]",
		Short: "List commits made after a tag (or the latest commits when no tag is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			tag := ""
			if len(args) == 1 {
				tag = args[0]
			}
			commits, err := s.repo.CommitsSinceTag(s.ctx, tag)
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return s.out.JSON(nonNil(commits))
			}
			if len(commits) == 0 {
				s.out.Info("No commits since " + tag)
				return nil
			}
			for _, c := range commits {
				s.out.Text(c)
			}
			return nil
		},
	}
}
