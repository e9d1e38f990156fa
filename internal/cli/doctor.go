package cli

import (
	"fmt"

	clierrors "github.com/ariel-frischer/changelog-gen/internal/errors"
	"github.com/ariel-frischer/changelog-gen/internal/health"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"doc"},
	Short:   "Check that history can be read and the changelog can be written (doc)",
	Long: `Run health checks for changelog-gen:
- Git CLI: git is on PATH (skipped for the go-git backend)
- Repository: the configured path is inside a git repository
- Changelog: the output file is a regular file or can be created`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report := health.RunHealthChecks(health.Options{
			HistoryBackend: cfg.HistoryBackend,
			RepoPath:       cfg.RepoPath,
			Output:         cfg.Output,
		})
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return clierrors.NewRuntimeError("health checks failed",
				"Resolve the failed checks above and run 'changelog-gen doctor' again")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
