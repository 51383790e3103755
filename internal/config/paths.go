// ABOUTME: Standard filesystem paths for termform configuration
// ABOUTME: Resolves $XDG_CONFIG_HOME/termform/ for global and .termform.yaml for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName        = "termform"
	globalFileName    = "config.yaml"
	projectConfigName = ".termform.yaml"
)

// GlobalDir returns the user-global config directory:
// $XDG_CONFIG_HOME/termform, or ~/.config/termform when unset.
func GlobalDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), globalFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectConfigName)
}
