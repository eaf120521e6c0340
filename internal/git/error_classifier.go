package git

import "strings"

// ErrorType is the classification of git's error text.
type ErrorType int

const (
	// ErrorTypeUnknown indicates the error could not be classified.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeEmptyRepository indicates a query hit a repository with no commits
	// or an unknown starting revision. Such queries answer "nothing yet".
	ErrorTypeEmptyRepository
	// ErrorTypeAuth indicates an authentication error.
	ErrorTypeAuth
	// ErrorTypeNetwork indicates a network connectivity error.
	ErrorTypeNetwork
	// ErrorTypeNotFound indicates a resource not found error.
	ErrorTypeNotFound
	// ErrorTypeNonFastForward indicates a non-fast-forward push rejection.
	ErrorTypeNonFastForward
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeUnknown:
		return "unknown"
	case ErrorTypeEmptyRepository:
		return "empty_repository"
	case ErrorTypeAuth:
		return "authentication"
	case ErrorTypeNetwork:
		return "network"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeNonFastForward:
		return "non_fast_forward"
	default:
		return "unknown"
	}
}

// PatternMatcher checks if a string contains any of a list of patterns.
type PatternMatcher struct {
	patterns []string
}

// NewPatternMatcher creates a PatternMatcher. Patterns must be lowercase.
func NewPatternMatcher(patterns ...string) *PatternMatcher {
	return &PatternMatcher{patterns: patterns}
}

// Matches lowercases s and reports whether it contains any pattern.
func (m *PatternMatcher) Matches(s string) bool {
	return m.MatchesLower(strings.ToLower(s))
}

// MatchesLower is Matches for input that is already lowercase.
func (m *PatternMatcher) MatchesLower(lower string) bool {
	for _, pattern := range m.patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

//nolint:gochecknoglobals // Package-level immutable pattern matchers
var (
	// emptyRepoPatterns match the errors git gives for history queries on a
	// freshly initialized repository or a missing range start.
	emptyRepoPatterns = NewPatternMatcher(
		"does not have any commits",
		"bad default revision",
		"unknown revision",
		"ambiguous argument",
	)

	authPatterns = NewPatternMatcher(
		"authentication failed",
		"could not read username",
		"permission denied",
		"invalid username or password",
		"access denied",
		"authentication required",
	)

	networkPatterns = NewPatternMatcher(
		"could not resolve host",
		"connection refused",
		"network is unreachable",
		"connection timed out",
		"operation timed out",
		"unable to access",
		"no route to host",
		"failed to connect",
	)

	notFoundPatterns = NewPatternMatcher(
		"repository not found",
		"does not appear to be a git repository",
		"not found",
		"does not exist",
	)

	nonFastForwardPatterns = NewPatternMatcher(
		"non-fast-forward",
		"failed to push some refs",
		"updates were rejected",
		"fetch first",
		"tip of your current branch is behind",
	)
)

// ErrorClassifier groups the pattern matchers behind one entry point.
type ErrorClassifier struct {
	emptyRepo      *PatternMatcher
	auth           *PatternMatcher
	network        *PatternMatcher
	notFound       *PatternMatcher
	nonFastForward *PatternMatcher
}

//nolint:gochecknoglobals // Singleton classifier for package use
var defaultClassifier = &ErrorClassifier{
	emptyRepo:      emptyRepoPatterns,
	auth:           authPatterns,
	network:        networkPatterns,
	notFound:       notFoundPatterns,
	nonFastForward: nonFastForwardPatterns,
}

// ClassifyError determines the error type from git's stderr.
//
// Classification priority (first match wins):
// 1. Empty repository (history queries that should answer "nothing yet")
// 2. Authentication
// 3. Network
// 4. Non-fast-forward
// 5. Not found
func ClassifyError(errStr string) ErrorType {
	return defaultClassifier.Classify(errStr)
}

// Classify determines the error type from an error string.
func (c *ErrorClassifier) Classify(errStr string) ErrorType {
	lower := strings.ToLower(errStr)
	switch {
	case c.emptyRepo.MatchesLower(lower):
		return ErrorTypeEmptyRepository
	case c.auth.MatchesLower(lower):
		return ErrorTypeAuth
	case c.network.MatchesLower(lower):
		return ErrorTypeNetwork
	case c.nonFastForward.MatchesLower(lower):
		return ErrorTypeNonFastForward
	case c.notFound.MatchesLower(lower):
		return ErrorTypeNotFound
	default:
		return ErrorTypeUnknown
	}
}

// IsEmptyRepositoryError reports whether stderr is one of the benign
// "no history yet" failures.
func IsEmptyRepositoryError(stderr string) bool {
	return emptyRepoPatterns.Matches(stderr)
}

// CollectOrEmpty turns a history query's result into records. A successful
// result is parsed; a benign empty-repository failure yields an empty slice;
// anything else is returned as a *CommandError.
func CollectOrEmpty[T any](res *Result, parse func(string) []T) ([]T, error) {
	if res.Succeeded {
		records := parse(res.Stdout)
		if records == nil {
			records = []T{}
		}
		return records, nil
	}
	if IsEmptyRepositoryError(res.Stderr) {
		return []T{}, nil
	}
	return nil, res.Err()
}
