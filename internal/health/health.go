// Package health provides environment health checks for changelog-gen. It validates
// that commit history can be read with the configured backend and that the changelog
// file can be written, returning structured reports used by the 'changelog-gen doctor' command.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ariel-frischer/changelog-gen/internal/git"
)

// lookPath resolves executables; tests replace it.
var lookPath = exec.LookPath

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Options describes the environment to check.
type Options struct {
	// HistoryBackend is the configured backend; the git binary is only required for "cli".
	HistoryBackend string
	// RepoPath is the repository to read history from (empty = working directory).
	RepoPath string
	// Output is the changelog file that will be updated.
	Output string
}

// RunHealthChecks runs all health checks and returns a report.
func RunHealthChecks(opts Options) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 3),
		Passed: true,
	}

	checks := []CheckResult{
		CheckGitCLI(opts.HistoryBackend),
		CheckRepository(opts.RepoPath),
		CheckChangelog(opts.Output),
	}
	for _, check := range checks {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	return report
}

// CheckGitCLI checks if the git binary is available. It always passes for
// the go-git backend, which does not run git.
func CheckGitCLI(backend string) CheckResult {
	if backend == git.BackendGoGit {
		return CheckResult{
			Name:    "Git CLI",
			Passed:  true,
			Message: "not required (go-git backend)",
		}
	}

	path, err := lookPath("git")
	if err != nil {
		return CheckResult{
			Name:    "Git CLI",
			Passed:  false,
			Message: "git not found in PATH",
		}
	}

	return CheckResult{
		Name:    "Git CLI",
		Passed:  true,
		Message: "found at " + path,
	}
}

// CheckRepository checks that repoPath is inside a git repository.
func CheckRepository(repoPath string) CheckResult {
	where := repoPath
	if where == "" {
		where = "current directory"
	}

	if !git.IsGitRepository(repoPath) {
		return CheckResult{
			Name:    "Repository",
			Passed:  false,
			Message: fmt.Sprintf("%s is not inside a git repository", where),
		}
	}

	return CheckResult{
		Name:    "Repository",
		Passed:  true,
		Message: fmt.Sprintf("%s is a git repository", where),
	}
}

// CheckChangelog checks that path is either a regular file or can be created
// in an existing directory.
func CheckChangelog(path string) CheckResult {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		return CheckResult{Name: "Changelog", Passed: true, Message: path + " exists"}
	case err == nil:
		return CheckResult{Name: "Changelog", Passed: false, Message: path + " is not a regular file"}
	case !os.IsNotExist(err):
		return CheckResult{Name: "Changelog", Passed: false, Message: err.Error()}
	}

	dir := filepath.Dir(path)
	if dirInfo, err := os.Stat(dir); err != nil || !dirInfo.IsDir() {
		return CheckResult{
			Name:    "Changelog",
			Passed:  false,
			Message: fmt.Sprintf("directory %s does not exist", dir),
		}
	}

	return CheckResult{Name: "Changelog", Passed: true, Message: path + " will be created"}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return output
}
