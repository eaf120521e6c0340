package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/gitdeck/internal/constants"
	"github.com/mrz1836/gitdeck/internal/errors"
)

// HomeEnvVar overrides the location of the global gitdeck directory.
const HomeEnvVar = "GITDECK_HOME"

// GlobalConfigDir returns the path to the global gitdeck directory.
// This is $GITDECK_HOME when set, otherwise ~/.gitdeck.
func GlobalConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.GitdeckHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the project configuration file for the repository
// rooted at repoRoot. An empty repoRoot yields a path relative to the working directory.
func ProjectConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, constants.ProjectConfigDir, constants.ProjectConfigName)
}
