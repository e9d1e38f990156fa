package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# changelog-gen configuration
# Every key can also be set with a CHANGELOG_GEN_<KEY> environment variable.

output: CHANGELOG.md                  # Changelog file to update
max_entries: 30                       # Bullets rendered per category
history_backend: cli                  # How history is read: cli | go-git
repo_path: ""                         # Repository to read (empty = working directory)
`
}

// GetDefaults returns the default configuration values as a map.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"output":          "CHANGELOG.md",
		"max_entries":     30,
		"history_backend": "cli",
		"repo_path":       "",
	}
}
