// Package cli implements the changelog-gen command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ariel-frischer/changelog-gen/internal/changelog"
	clierrors "github.com/ariel-frischer/changelog-gen/internal/errors"
	"github.com/ariel-frischer/changelog-gen/internal/git"
	"github.com/spf13/cobra"
)

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "changelog-gen",
	Short: "Prepend a dated, categorized section to CHANGELOG.md from git history",
	Long: `Read commit subjects from git history, group them by conventional-commit
prefix (feat, fix, docs, chore, refactor, test; everything else is "Other"),
and prepend a section dated today (UTC) to CHANGELOG.md.

An existing "# Changelog" heading on the first line is replaced by the new
section's heading; all other existing content is kept below the new section.
Each category lists at most 30 commits, most recent first.`,
	Example: `  # Update CHANGELOG.md in the current repository
  changelog-gen

  # Show the section that would be added, without writing it
  changelog-gen preview

  # Read history without the git binary
  CHANGELOG_GEN_HISTORY_BACKEND=go-git changelog-gen`,
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureDebug(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Project config file (default .changelog-gen.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug tracing to stderr")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
			fmt.Sprintf("Use '%s --help' to see available flags", cmd.CommandPath()))
	})
}

// Execute runs the root command and prints a formatted diagnostic on failure.
// The returned error maps to a process exit code through ExitCode.
func Execute() error {
	return execute(context.Background(), os.Args[1:])
}

func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		clierrors.FprintError(rootCmd.ErrOrStderr(), toCLIError(err))
	}
	return err
}

// noArgs rejects positional arguments with a structured argument error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return clierrors.UnexpectedArguments(args)
	}
	return nil
}

// configureDebug wires the package debug hooks to stderr when --debug is set.
func configureDebug(cmd *cobra.Command) {
	if !debugFlag {
		git.SetDebugLogger(nil)
		changelog.SetDebugLogger(nil)
		return
	}

	w := cmd.ErrOrStderr()
	logger := func(format string, args ...any) {
		fmt.Fprintf(w, "[debug] "+format+"\n", args...)
	}
	git.SetDebugLogger(logger)
	changelog.SetDebugLogger(logger)
}
