package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/gitdeck/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Binary:         constants.DefaultGitBinary,
			LogLimit:       constants.DefaultLogLimit,
			FileLogLimit:   constants.DefaultFileLogLimit,
			CommandTimeout: constants.DefaultCommandTimeout,
			Remote:         constants.DefaultRemote,
		},
		GitHub: GitHubConfig{
			APIURL:      constants.DefaultGitHubAPIURL,
			OAuthURL:    constants.DefaultGitHubOAuthURL,
			TokenEnvVar: constants.DefaultGitHubTokenEnvVar,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("git.binary", d.Git.Binary)
	v.SetDefault("git.log_limit", d.Git.LogLimit)
	v.SetDefault("git.file_log_limit", d.Git.FileLogLimit)
	v.SetDefault("git.command_timeout", d.Git.CommandTimeout.String())
	v.SetDefault("git.remote", d.Git.Remote)

	v.SetDefault("github.api_url", d.GitHub.APIURL)
	v.SetDefault("github.oauth_url", d.GitHub.OAuthURL)
	v.SetDefault("github.client_id", d.GitHub.ClientID)
	v.SetDefault("github.token_env_var", d.GitHub.TokenEnvVar)
}
