// Package config tests layered configuration loading for changelog-gen.
// Related: internal/config/config.go, internal/config/validate.go
// Tags: config, koanf, yaml, json, env

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)

	assert.Equal(t, &Configuration{
		Output:         "CHANGELOG.md",
		MaxEntries:     30,
		HistoryBackend: "cli",
		RepoPath:       "",
	}, cfg)
}

func TestLoad_ProjectConfig(t *testing.T) {
	tests := map[string]struct {
		files map[string]string
		want  Configuration
	}{
		"yaml": {
			files: map[string]string{
				".changelog-gen.yml": "output: HISTORY.md\nmax_entries: 10\n",
			},
			want: Configuration{Output: "HISTORY.md", MaxEntries: 10, HistoryBackend: "cli"},
		},
		"json when no yaml": {
			files: map[string]string{
				".changelog-gen.json": `{"history_backend": "go-git"}`,
			},
			want: Configuration{Output: "CHANGELOG.md", MaxEntries: 30, HistoryBackend: "go-git"},
		},
		"yaml preferred over json": {
			files: map[string]string{
				".changelog-gen.yml":  "max_entries: 5\n",
				".changelog-gen.json": `{"max_entries": 7}`,
			},
			want: Configuration{Output: "CHANGELOG.md", MaxEntries: 5, HistoryBackend: "cli"},
		},
		"empty yaml keeps defaults": {
			files: map[string]string{
				".changelog-gen.yml": "\n",
			},
			want: Configuration{Output: "CHANGELOG.md", MaxEntries: 30, HistoryBackend: "cli"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			for file, content := range tt.files {
				writeFile(t, filepath.Join(dir, file), content)
			}

			cfg, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoad_CustomProjectPath(t *testing.T) {
	dir := isolate(t)

	yamlPath := filepath.Join(dir, "custom.yaml")
	writeFile(t, yamlPath, "output: docs/CHANGES.md\n")
	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: yamlPath, SkipUserConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "docs/CHANGES.md", cfg.Output)

	jsonPath := filepath.Join(dir, "custom.json")
	writeFile(t, jsonPath, `{"max_entries": 3}`)
	cfg, err = LoadWithOptions(LoadOptions{ProjectConfigPath: jsonPath, SkipUserConfig: true})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxEntries)

	_, err = LoadWithOptions(LoadOptions{ProjectConfigPath: filepath.Join(dir, "missing.yml"), SkipUserConfig: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_Priority(t *testing.T) {
	dir := isolate(t)

	userPath := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, userPath, "output: USER.md\nmax_entries: 11\nhistory_backend: go-git\n")
	writeFile(t, filepath.Join(dir, ".changelog-gen.yml"), "max_entries: 12\n")
	t.Setenv("CHANGELOG_GEN_HISTORY_BACKEND", "cli")

	cfg, err := LoadWithOptions(LoadOptions{UserConfigPath: userPath})
	require.NoError(t, err)

	assert.Equal(t, "USER.md", cfg.Output, "user overrides defaults")
	assert.Equal(t, 12, cfg.MaxEntries, "project overrides user")
	assert.Equal(t, "cli", cfg.HistoryBackend, "env overrides project and user")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CHANGELOG_GEN_MAX_ENTRIES", "4")
	t.Setenv("CHANGELOG_GEN_OUTPUT", "NEWS.md")

	cfg, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxEntries)
	assert.Equal(t, "NEWS.md", cfg.Output)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]struct {
		yaml      string
		wantField string
		wantMsg   string
	}{
		"max entries below one": {
			yaml:      "max_entries: 0\n",
			wantField: "max_entries",
			wantMsg:   "must be at least 1",
		},
		"unknown backend": {
			yaml:      "history_backend: svn\n",
			wantField: "history_backend",
			wantMsg:   "must be one of: cli go-git",
		},
		"empty output": {
			yaml:      "output: \"\"\n",
			wantField: "output",
			wantMsg:   "is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, ".changelog-gen.yml"), tt.yaml)

			_, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

func TestLoad_InvalidYAMLSyntax(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".changelog-gen.yml"), "output: [unclosed\n")

	_, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Greater(t, ve.Line, 0)
	assert.Contains(t, err.Error(), "validating YAML syntax for project config")
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".changelog-gen.yml"), GetDefaultConfigTemplate())

	fromTemplate, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, ".changelog-gen.yml")))
	defaults, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)

	assert.Equal(t, defaults, fromTemplate)
}

func TestExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "repo"), expandHomePath("~/repo"))
	assert.Equal(t, "/abs/repo", expandHomePath("/abs/repo"))
	assert.Equal(t, "", expandHomePath(""))
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "max_entries", toSnakeCase("MaxEntries"))
	assert.Equal(t, "history_backend", toSnakeCase("HistoryBackend"))
	assert.Equal(t, "output", toSnakeCase("Output"))
}

func TestValidateYAMLSyntax_MissingFile(t *testing.T) {
	assert.NoError(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "nope.yml")))
}
