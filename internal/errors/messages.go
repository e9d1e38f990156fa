package errors

import "fmt"

// Common error messages for the changelog-gen CLI.

// HistoryUnavailable creates an error for a failed commit history query.
func HistoryUnavailable(err error) *CLIError {
	return WrapWithMessage(err, History,
		"cannot read commit history",
		"Run changelog-gen from inside a git repository that has at least one commit",
		"Check that git is installed and on PATH: git --version",
		"Or read history without the git binary: CHANGELOG_GEN_HISTORY_BACKEND=go-git",
	)
}

// ChangelogNotWritable creates an error when the changelog cannot be read or written.
func ChangelogNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Filesystem,
		fmt.Sprintf("cannot update %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure the path is a regular file and its directory exists",
	)
}

// ConfigParseError creates an error for an invalid config file or value.
func ConfigParseError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Check .changelog-gen.yml and ~/.config/changelog-gen/config.yml for syntax errors",
		"Check CHANGELOG_GEN_* environment variables",
	)
}

// UnexpectedArguments creates an error when positional arguments are given.
func UnexpectedArguments(args []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unexpected arguments: %v", args),
		"changelog-gen [flags]",
		"Run changelog-gen without arguments from the repository root",
		"Use 'changelog-gen --help' to see available commands",
	)
}
