// Package testutil provides testing utilities for gitdeck.
//
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors used to simulate failures in tests.
var (
	// ErrMockGitFailed simulates a git command failure returned by a fake runner.
	ErrMockGitFailed = errors.New("git command failed")

	// ErrMockNetwork simulates a transport failure talking to GitHub.
	ErrMockNetwork = errors.New("network error")
)
