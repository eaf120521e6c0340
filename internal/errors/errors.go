// Package errors provides centralized error handling for gitdeck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
var (
	// ErrGitLaunch indicates that the git executable could not be started at all
	// (missing binary, bad working directory, permission problem).
	ErrGitLaunch = errors.New("failed to launch git")

	// ErrGitOperation indicates that git ran but exited with a failure status.
	ErrGitOperation = errors.New("git operation failed")

	// ErrCloneFailed indicates that a streamed clone exited unsuccessfully.
	ErrCloneFailed = errors.New("clone failed")

	// ErrNotGitRepo indicates the directory is not inside a git work tree.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrGitHubOperation indicates that a GitHub API request failed.
	ErrGitHubOperation = errors.New("github operation failed")

	// ErrGitHubAuthRequired indicates no GitHub token was available.
	ErrGitHubAuthRequired = errors.New("github token required")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidGit indicates an invalid Git configuration value.
	ErrConfigInvalidGit = errors.New("invalid Git configuration")

	// ErrConfigInvalidGitHub indicates an invalid GitHub configuration value.
	ErrConfigInvalidGitHub = errors.New("invalid GitHub configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidArgument indicates a command-line argument could not be used.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonInteractiveMode indicates that a confirmation was required but the
	// terminal is not interactive and --yes was not given.
	ErrNonInteractiveMode = errors.New("cannot prompt in non-interactive mode")

	// ErrOperationCanceled indicates the user declined a confirmation prompt.
	ErrOperationCanceled = errors.New("operation canceled by user")
)
