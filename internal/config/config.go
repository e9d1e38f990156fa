// Package config provides hierarchical configuration management for changelog-gen using koanf.
// Configuration is loaded with priority: environment variables > project config (.changelog-gen.yml
// or .changelog-gen.json) > user config (~/.config/changelog-gen/config.yml) > defaults.
// With no config files and no environment overrides, the defaults reproduce the plain
// behaviour: CHANGELOG.md in the working directory, 30 entries per category, git CLI history.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "CHANGELOG_GEN_"

// Configuration represents the changelog-gen configuration
type Configuration struct {
	// Output is the changelog file to update, relative to the working directory.
	Output string `koanf:"output" validate:"required"`
	// MaxEntries caps the bullets rendered per category.
	MaxEntries int `koanf:"max_entries" validate:"min=1"`
	// HistoryBackend selects how commit history is read: "cli" or "go-git".
	HistoryBackend string `koanf:"history_backend" validate:"oneof=cli go-git"`
	// RepoPath is the repository to read history from (empty = working directory).
	RepoPath string `koanf:"repo_path"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .changelog-gen.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path (default: XDG config dir)
	UserConfigPath string
	// SkipUserConfig ignores the user-level config file entirely
	SkipUserConfig bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when it exists.
func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		var err error
		if path, err = UserConfigPath(); err != nil {
			// No resolvable config dir (e.g. $HOME unset): nothing to load.
			return nil
		}
	}

	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "user"); err != nil {
		return fmt.Errorf("loading user YAML config: %w", err)
	}
	return nil
}

// loadProjectConfig loads project-level config, YAML preferred over JSON.
// An explicit path is loaded with the parser matching its extension.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		if strings.HasSuffix(strings.ToLower(customPath), ".json") {
			return loadJSONConfig(k, customPath, "project")
		}
		return loadYAMLConfig(k, customPath, "project")
	}

	if path := ProjectConfigPath(); fileExists(path) {
		if err := loadYAMLConfig(k, path, "project"); err != nil {
			return fmt.Errorf("loading project YAML config: %w", err)
		}
		return nil
	}

	if path := ProjectJSONConfigPath(); fileExists(path) {
		if err := loadJSONConfig(k, path, "project"); err != nil {
			return fmt.Errorf("loading project JSON config: %w", err)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadJSONConfig loads a JSON config file
func loadJSONConfig(k *koanf.Koanf, path, configType string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.RepoPath = expandHomePath(cfg.RepoPath)

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOG_GEN_MAX_ENTRIES -> max_entries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return homeDir + path[1:]
		}
	}
	return path
}
