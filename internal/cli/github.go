package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/config"
	"github.com/mrz1836/gitdeck/internal/errors"
	"github.com/mrz1836/gitdeck/internal/github"
	"github.com/mrz1836/gitdeck/internal/tui"
)

// defaultDevicePollInterval applies when GitHub does not send an interval.
const defaultDevicePollInterval = 5 * time.Second

// pollWait sleeps between device flow polls. Tests replace it.
//
//nolint:gochecknoglobals // Required for test injection of the poll delay
var pollWait = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newGitHubClient(cfg *config.Config) *github.Client {
	return github.NewClient(
		github.WithAPIURL(cfg.GitHub.APIURL),
		github.WithOAuthURL(cfg.GitHub.OAuthURL),
		github.WithToken(os.Getenv(cfg.GitHub.TokenEnvVar)),
	)
}

// AddGitHubCommand adds the github command group.
func AddGitHubCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "github",
		Short: "Sign in to GitHub and manage releases",
	}

	cmd.AddCommand(newGitHubLoginCmd(flags))

	release := &cobra.Command{
		Use:   "release",
		Short: "Create releases and draft release notes",
	}
	release.AddCommand(newReleaseCreateCmd(flags))
	release.AddCommand(newReleaseNotesCmd(flags))
	cmd.AddCommand(release)

	repo := &cobra.Command{
		Use:   "repo",
		Short: "Manage GitHub repositories",
	}
	repo.AddCommand(newRepoCreateCmd(flags))
	cmd.AddCommand(repo)

	root.AddCommand(cmd)
}

func newGitHubLoginCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize gitdeck with the GitHub device flow and print the token",
		Long: `Start the GitHub OAuth device flow for github.client_id.

Instructions are written to stderr and the token to stdout, so it can be
captured directly:

  export GITHUB_TOKEN=$(gitdeck github login)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if cfg.GitHub.ClientID == "" {
				return fmt.Errorf("github.client_id: %w", errors.ErrEmptyValue)
			}

			ctx := cmd.Context()
			client := newGitHubClient(cfg)
			code, err := client.StartDeviceFlow(ctx, cfg.GitHub.ClientID)
			if err != nil {
				return err
			}

			notice := tui.NewOutput(cmd.ErrOrStderr(), flags.Output)
			notice.Info(fmt.Sprintf("Open %s and enter code %s", code.VerificationURI, code.UserCode))

			token, err := waitForDeviceToken(ctx, client, cfg.GitHub.ClientID, code)
			if err != nil {
				return err
			}

			out := newOutput(cmd, flags)
			if flags.Output == OutputJSON {
				return out.JSON(map[string]string{"token": token, "env_var": cfg.GitHub.TokenEnvVar})
			}
			notice.Success("Authorized. Store the token in " + cfg.GitHub.TokenEnvVar)
			out.Text(token)
			return nil
		},
	}
}

// waitForDeviceToken polls until the user authorizes the device, the code
// expires, or ctx is canceled.
func waitForDeviceToken(ctx context.Context, client *github.Client, clientID string, code *github.DeviceCode) (string, error) {
	interval := time.Duration(code.Interval) * time.Second
	if interval <= 0 {
		interval = defaultDevicePollInterval
	}
	if code.ExpiresIn > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(code.ExpiresIn)*time.Second)
		defer cancel()
	}

	for {
		if err := pollWait(ctx, interval); err != nil {
			return "", fmt.Errorf("device authorization not completed: %w", err)
		}
		token, err := client.PollDeviceToken(ctx, clientID, code.DeviceCode)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}
}

// githubSlug resolves owner and repository from the configured remote.
func githubSlug(s *session) (owner, repo string, err error) {
	remotes, err := s.repo.Remotes(s.ctx)
	if err != nil {
		return "", "", err
	}
	for _, r := range remotes {
		if r.Name == s.cfg.Git.Remote {
			return github.ParseRemoteURL(r.URL)
		}
	}
	return "", "", fmt.Errorf("remote %q is not configured: %w", s.cfg.Git.Remote, errors.ErrInvalidArgument)
}

func newReleaseCreateCmd(flags *GlobalFlags) *cobra.Command {
	var (
		rel      github.Release
		generate bool
		previous string
	)

	cmd := &cobra.Command{
		Use:   "create <tag>",
		Short: "Create a GitHub release for a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			owner, repo, err := githubSlug(s)
			if err != nil {
				return err
			}

			client := newGitHubClient(s.cfg)
			rel.TagName = args[0]
			if generate {
				notes, err := client.GenerateReleaseNotes(s.ctx, owner, repo, rel.TagName, previous)
				if err != nil {
					return err
				}
				if rel.Name == "" {
					rel.Name = notes.Name
				}
				if rel.Body == "" {
					rel.Body = notes.Body
				}
			}
			if rel.Name == "" {
				rel.Name = rel.TagName
			}

			url, err := client.CreateRelease(s.ctx, owner, repo, rel)
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return s.out.JSON(map[string]string{"html_url": url})
			}
			s.out.Success("Created release " + rel.Name)
			s.out.Info(url)
			return nil
		},
	}

	cmd.Flags().StringVar(&rel.Name, "name", "", "release title (defaults to the tag)")
	cmd.Flags().StringVar(&rel.Body, "notes", "", "release notes (markdown)")
	cmd.Flags().BoolVar(&rel.Draft, "draft", false, "create as a draft")
	cmd.Flags().BoolVar(&rel.Prerelease, "prerelease", false, "mark as a prerelease")
	cmd.Flags().BoolVar(&generate, "generate-notes", false, "let GitHub draft the notes")
	cmd.Flags().StringVar(&previous, "previous-tag", "", "start of the range for generated notes")
	return cmd
}

func newReleaseNotesCmd(flags *GlobalFlags) *cobra.Command {
	var previous string

	cmd := &cobra.Command{
		Use:   "notes <tag>",
		Short: "Preview the release notes GitHub would generate for a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			owner, repo, err := githubSlug(s)
			if err != nil {
				return err
			}
			notes, err := newGitHubClient(s.cfg).GenerateReleaseNotes(s.ctx, owner, repo, args[0], previous)
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return s.out.JSON(notes)
			}
			s.out.Info(notes.Name)
			tui.RenderMarkdown(cmd.OutOrStdout(), notes.Body)
			return nil
		},
	}

	cmd.Flags().StringVar(&previous, "previous-tag", "", "start of the range (defaults to the previous release)")
	return cmd
}

func newRepoCreateCmd(flags *GlobalFlags) *cobra.Command {
	var (
		description string
		private     bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a repository for the authenticated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			created, err := newGitHubClient(cfg).CreateRepository(cmd.Context(), args[0], description, private)
			if err != nil {
				return err
			}
			out := newOutput(cmd, flags)
			if flags.Output == OutputJSON {
				return out.JSON(created)
			}
			out.Success("Created " + created.HTMLURL)
			out.Info("Clone with: gitdeck clone " + created.CloneURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "repository description")
	cmd.Flags().BoolVar(&private, "private", false, "create a private repository")
	return cmd
}
