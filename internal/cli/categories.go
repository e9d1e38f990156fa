package cli

import (
	"fmt"

	"github.com/ariel-frischer/changelog-gen/internal/changelog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List commit prefixes and the sections they are filed under",
	Long: `List the fixed prefix table in rendering order. Prefixes match the text
before the first colon of a commit subject, case-insensitively. Commits
matching no prefix are filed under "Other".`,
	Args: noArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCategories(cmd)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func printCategories(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	prefix := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, c := range changelog.Categories() {
		fmt.Fprintf(out, "%s %s\n", prefix(fmt.Sprintf("%-10s", c.Prefix+":")), c.Title)
	}
	fmt.Fprintf(out, "%s %s\n", dim(fmt.Sprintf("%-10s", "*")), changelog.OtherTitle)
}
