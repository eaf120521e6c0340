package constants

// Log file settings.
const (
	// CLILogFileName is the rotating log file under ~/.gitdeck/logs.
	CLILogFileName = "gitdeck.log"

	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is how many rotated files are kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is how long rotated files are kept.
	LogMaxAgeDays = 14
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global config file inside GitdeckHome.
	GlobalConfigName = "config.yaml"

	// ProjectConfigDir is the directory inside a repository that holds project config.
	ProjectConfigDir = ".gitdeck"

	// ProjectConfigName is the project config file inside ProjectConfigDir.
	ProjectConfigName = "config.yaml"
)
