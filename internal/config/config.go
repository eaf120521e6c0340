// Package config provides configuration management for gitdeck with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (GITDECK_* prefix)
//  2. Project config (<repo>/.gitdeck/config.yaml)
//  3. Global config (~/.gitdeck/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/git or other internal packages.
package config

import "time"

// Config is the root configuration structure for gitdeck.
type Config struct {
	// Git contains settings for how the git executable is invoked.
	Git GitConfig `yaml:"git" mapstructure:"git"`

	// GitHub contains settings for the GitHub REST and OAuth endpoints.
	GitHub GitHubConfig `yaml:"github" mapstructure:"github"`
}

// GitConfig contains settings for git invocation.
type GitConfig struct {
	// Binary is the git executable, either a name looked up on PATH or an absolute path.
	// Default: "git"
	Binary string `yaml:"binary" mapstructure:"binary"`

	// LogLimit is the number of commits shown by the log view.
	// Default: 100
	LogLimit int `yaml:"log_limit" mapstructure:"log_limit"`

	// FileLogLimit is the number of commits shown for a single file's history.
	// Default: 50
	FileLogLimit int `yaml:"file_log_limit" mapstructure:"file_log_limit"`

	// CommandTimeout bounds each git invocation. Zero disables the bound.
	CommandTimeout time.Duration `yaml:"command_timeout" mapstructure:"command_timeout"`

	// Remote is the remote used for push, pull, and tag publishing.
	// Default: "origin"
	Remote string `yaml:"remote" mapstructure:"remote"`
}

// GitHubConfig contains settings for GitHub access.
type GitHubConfig struct {
	// APIURL is the REST API root. Override for GitHub Enterprise.
	APIURL string `yaml:"api_url" mapstructure:"api_url"`

	// OAuthURL is the root for the device flow endpoints.
	OAuthURL string `yaml:"oauth_url" mapstructure:"oauth_url"`

	// ClientID is the OAuth application id used by 'github login'.
	ClientID string `yaml:"client_id" mapstructure:"client_id"`

	// TokenEnvVar names the environment variable holding the API token.
	// The token itself is never stored in config files.
	TokenEnvVar string `yaml:"token_env_var" mapstructure:"token_env_var"`
}
