package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/gitdeck/internal/config"
)

// AddConfigCommand adds the config command group.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect gitdeck configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration after merging, in order of precedence:
  - GITDECK_* environment variables
  - <repo>/.gitdeck/config.yaml
  - ~/.gitdeck/config.yaml
  - built-in defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return showConfig(cmd, flags, cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the global config and log file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			global, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}
			logs, err := LogFilePath()
			if err != nil {
				return err
			}
			out := newOutput(cmd, flags)
			if flags.Output == OutputJSON {
				return out.JSON(map[string]string{"config": global, "log": logs})
			}
			out.Table([]string{"FILE", "PATH"}, [][]string{{"config", global}, {"log", logs}})
			return nil
		},
	})

	root.AddCommand(cmd)
}

func showConfig(cmd *cobra.Command, flags *GlobalFlags, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	out := newOutput(cmd, flags)
	if flags.Output == OutputJSON {
		// Round-trip through YAML so durations keep their "30s" form.
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to decode config: %w", err)
		}
		return out.JSON(doc)
	}
	out.Text(string(data))
	return nil
}
