package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map because wrapped errors need errors.Is traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrGitLaunch,
		info: ErrorInfo{
			Message: "Could not start git.",
			Action:  "Is git installed and available in PATH?",
		},
	},
	{
		err: ErrNotGitRepo,
		info: ErrorInfo{
			Message: "The directory is not a git repository.",
			Action:  "Run the command inside a repository or pass -C <path>.",
		},
	},
	{
		err: ErrCloneFailed,
		info: ErrorInfo{
			Message: "The clone did not complete.",
			Action:  "Check the repository URL, your credentials, and the destination path.",
		},
	},
	{
		err: ErrGitOperation,
		info: ErrorInfo{
			Message: "Git reported an error.",
			Action:  "Review the git output above.",
		},
	},
	{
		err: ErrGitHubAuthRequired,
		info: ErrorInfo{
			Message: "No GitHub token is available.",
			Action:  "Run 'gitdeck github login' or export the configured token variable.",
		},
	},
	{
		err: ErrGitHubOperation,
		info: ErrorInfo{
			Message: "The GitHub request failed.",
			Action:  "Check your network connection and token permissions.",
		},
	},
	{
		err: ErrConfigInvalidGit,
		info: ErrorInfo{
			Message: "The git section of the configuration is invalid.",
			Action:  "Run 'gitdeck config show' and fix the reported key.",
		},
	},
	{
		err: ErrConfigInvalidGitHub,
		info: ErrorInfo{
			Message: "The github section of the configuration is invalid.",
			Action:  "Run 'gitdeck config show' and fix the reported key.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unknown output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but the terminal is not interactive.",
			Action:  "Re-run with --yes.",
		},
	},
	{
		err:  ErrOperationCanceled,
		info: ErrorInfo{Message: "Operation canceled."},
	},
}

//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo tries a direct map hit first, then errors.Is traversal.
// Unknown errors fall back to their own message.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action. The action is empty when there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
