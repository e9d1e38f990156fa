package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/changelog-gen/internal/config"
	clierrors "github.com/ariel-frischer/changelog-gen/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented .changelog-gen.yml with the default settings",
	Long: `Create .changelog-gen.yml in the current directory from the default template.
Every key in the file matches the built-in default, so running changelog-gen
behaves the same until you edit it. An existing file is kept unless --force is given.`,
	Example: `  changelog-gen init
  changelog-gen init --force`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command) error {
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		return clierrors.NewConfigError(
			fmt.Sprintf("%s already exists", path),
			"Edit the existing file, or run 'changelog-gen init --force' to overwrite it",
		)
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Filesystem,
			fmt.Sprintf("cannot write %s", path),
			"Check write permissions for the current directory",
		)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", green("✓"), path)
	return nil
}
