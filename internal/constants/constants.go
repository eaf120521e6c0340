// Package constants provides centralized constant values used throughout gitdeck.
// This package MUST NOT import any other internal packages.
package constants

import "time"

// Directory names used by gitdeck for its own data.
const (
	// GitdeckHome is the hidden directory in the user's home where gitdeck
	// keeps its global config and logs.
	GitdeckHome = ".gitdeck"

	// LogsDir is the directory name under GitdeckHome where log files live.
	LogsDir = "logs"
)

// Git invocation defaults.
const (
	// DefaultGitBinary is the executable looked up on PATH when no override is configured.
	DefaultGitBinary = "git"

	// DefaultRemote is the remote used by push, pull, and tag publishing.
	DefaultRemote = "origin"

	// ShortIDLength is the number of hex characters kept for abbreviated
	// commit ids in blame, stash, and worktree records.
	ShortIDLength = 8

	// DefaultLogLimit is the number of commits returned by the log view.
	DefaultLogLimit = 100

	// DefaultFileLogLimit is the number of commits returned for a single file's history.
	DefaultFileLogLimit = 50

	// CommitsSinceTagFallback caps the unreleased-commit listing when no tag exists.
	CommitsSinceTagFallback = 100

	// DefaultCommandTimeout is zero: git commands run until they finish.
	DefaultCommandTimeout time.Duration = 0

	// GitWaitDelay is how long a finished or killed git child may keep its
	// output pipes open (through a helper it spawned) before they are closed.
	GitWaitDelay = time.Second

	// GitLocale is forced on every git child so its messages stay parseable.
	GitLocale = "C"
)

// GitHub defaults.
const (
	// DefaultGitHubAPIURL is the REST endpoint root.
	DefaultGitHubAPIURL = "https://api.github.com"

	// DefaultGitHubOAuthURL is the root for the OAuth device flow endpoints.
	DefaultGitHubOAuthURL = "https://github.com"

	// DefaultGitHubTokenEnvVar is the environment variable read for the API token.
	DefaultGitHubTokenEnvVar = "GITHUB_TOKEN"

	// GitHubAPIVersion is sent in the X-GitHub-Api-Version header.
	GitHubAPIVersion = "2022-11-28"

	// GitHubRequestTimeout bounds a single REST round trip.
	GitHubRequestTimeout = 30 * time.Second
)
