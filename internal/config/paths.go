package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/changelog-gen/config.yml
// - macOS: ~/Library/Application Support/changelog-gen/config.yml
// - Windows: %APPDATA%\changelog-gen\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "changelog-gen", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level YAML config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".changelog-gen.yml"
}

// ProjectJSONConfigPath returns the path to the project-level JSON config file.
func ProjectJSONConfigPath() string {
	return ".changelog-gen.json"
}
