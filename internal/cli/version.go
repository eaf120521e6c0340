package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/gitdeck/internal/git"
)

// versionReport is the JSON shape of 'gitdeck version'.
type versionReport struct {
	Gitdeck string `json:"gitdeck"`
	Git     string `json:"git"`
}

// AddVersionCommand adds the version command, which also checks that git can be launched.
func AddVersionCommand(root *cobra.Command, flags *GlobalFlags, info BuildInfo) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show gitdeck and git versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			gitVersion, err := git.Version(cmd.Context(), cfg.Git.Binary)
			if err != nil {
				return err
			}

			out := newOutput(cmd, flags)
			report := versionReport{Gitdeck: formatVersion(info), Git: gitVersion}
			if flags.Output == OutputJSON {
				return out.JSON(report)
			}
			out.Info("gitdeck " + report.Gitdeck)
			out.Info(report.Git)
			return nil
		},
	})
}
