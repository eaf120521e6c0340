package config

import (
	"net/url"
	"strings"

	"github.com/mrz1836/gitdeck/internal/errors"
)

// Validate checks the configuration for invalid values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - git.binary must not be empty
//   - git.log_limit and git.file_log_limit must be positive
//   - git.command_timeout must not be negative
//   - git.remote must not be empty
//   - github.api_url and github.oauth_url must be absolute http(s) URLs
//   - github.token_env_var must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateGitConfig(&cfg.Git); err != nil {
		return err
	}

	return validateGitHubConfig(&cfg.GitHub)
}

func validateGitConfig(cfg *GitConfig) error {
	if strings.TrimSpace(cfg.Binary) == "" {
		return errors.Wrap(errors.ErrConfigInvalidGit, "git.binary must not be empty")
	}
	if cfg.LogLimit <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidGit,
			"git.log_limit must be positive, got %d", cfg.LogLimit)
	}
	if cfg.FileLogLimit <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidGit,
			"git.file_log_limit must be positive, got %d", cfg.FileLogLimit)
	}
	if cfg.CommandTimeout < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidGit,
			"git.command_timeout must not be negative, got %s", cfg.CommandTimeout)
	}
	if strings.TrimSpace(cfg.Remote) == "" {
		return errors.Wrap(errors.ErrConfigInvalidGit, "git.remote must not be empty")
	}
	return nil
}

func validateGitHubConfig(cfg *GitHubConfig) error {
	if err := validateHTTPURL("github.api_url", cfg.APIURL); err != nil {
		return err
	}
	if err := validateHTTPURL("github.oauth_url", cfg.OAuthURL); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.TokenEnvVar) == "" {
		return errors.Wrap(errors.ErrConfigInvalidGitHub, "github.token_env_var must not be empty")
	}
	return nil
}

func validateHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.Wrapf(errors.ErrConfigInvalidGitHub,
			"%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}
