package cli

import (
	"fmt"

	"github.com/ariel-frischer/changelog-gen/internal/changelog"
	"github.com/ariel-frischer/changelog-gen/internal/git"
	"github.com/ariel-frischer/changelog-gen/internal/output"
	"github.com/spf13/cobra"
)

var previewPlainFlag bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the section that would be prepended, without writing it",
	Long: `Read commit history and print today's changelog section to stdout.
The changelog file is not read or modified.

With --plain the output is exactly the markdown that would be prepended.`,
	Example: `  changelog-gen preview
  changelog-gen preview --plain > section.md`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewPlainFlag, "plain", false, "Plain markdown output (no colors/icons)")
}

func runPreview(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	grouped, err := readGrouped(cmd, cfg)
	if err != nil {
		return err
	}

	opts := changelog.FormatOptions{Plain: previewPlainFlag}
	if err := changelog.FormatTerminal(cmd.OutOrStdout(), grouped, now(), cfg.MaxEntries, opts); err != nil {
		return fmt.Errorf("formatting preview: %w", err)
	}

	if !previewPlainFlag {
		label := cfg.Output + " not modified"
		if branch, err := git.GetCurrentBranch(cfg.RepoPath); err == nil && branch != "" {
			label = branch + " · " + label
		}
		output.PrintRule(cmd.OutOrStdout(), output.TerminalWidth(cmd.OutOrStdout()), label)
	}
	return nil
}
