package cli

import (
	"errors"

	"github.com/ariel-frischer/changelog-gen/internal/changelog"
	clierrors "github.com/ariel-frischer/changelog-gen/internal/errors"
	"github.com/ariel-frischer/changelog-gen/internal/git"
)

// Exit codes for the changelog-gen CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates an unclassified failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or flags
	ExitInvalidArguments = 2

	// ExitConfigError indicates an invalid config file or value
	ExitConfigError = 3

	// ExitHistoryUnavailable indicates git history could not be read
	ExitHistoryUnavailable = 4

	// ExitFilesystemError indicates the changelog could not be read or written
	ExitFilesystemError = 5
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch toCLIError(err).Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Configuration:
		return ExitConfigError
	case clierrors.History:
		return ExitHistoryUnavailable
	case clierrors.Filesystem:
		return ExitFilesystemError
	default:
		return ExitFailure
	}
}

// toCLIError classifies err into a CLIError, keeping one that is already structured.
func toCLIError(err error) *clierrors.CLIError {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}

	switch {
	case errors.Is(err, git.ErrHistoryUnavailable):
		return clierrors.HistoryUnavailable(err)
	case errors.Is(err, changelog.ErrFilesystem):
		return clierrors.Wrap(err, clierrors.Filesystem)
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}
