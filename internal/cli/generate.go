package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ariel-frischer/changelog-gen/internal/changelog"
	"github.com/ariel-frischer/changelog-gen/internal/config"
	clierrors "github.com/ariel-frischer/changelog-gen/internal/errors"
	"github.com/ariel-frischer/changelog-gen/internal/git"
	"github.com/ariel-frischer/changelog-gen/internal/progress"
	"github.com/spf13/cobra"
)

// now is the clock used for the dated section heading.
var now = time.Now

// newReader builds the history reader; tests replace it.
var newReader = git.NewReader

// runGenerate reads history, renders today's section and merges it into the
// configured changelog. Nothing is written unless every earlier step succeeds.
func runGenerate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	grouped, err := readGrouped(cmd, cfg)
	if err != nil {
		return err
	}

	section, err := changelog.RenderString(grouped, now(), cfg.MaxEntries)
	if err != nil {
		return fmt.Errorf("rendering changelog section: %w", err)
	}

	if err := changelog.UpdateFile(cfg.Output, section); err != nil {
		return clierrors.ChangelogNotWritable(cfg.Output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s updated.\n", cfg.Output)
	return nil
}

// loadConfig loads layered configuration, honoring --config.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, clierrors.ConfigParseError(err)
	}
	return cfg, nil
}

// readGrouped reads commit summaries with the configured backend and groups them.
func readGrouped(cmd *cobra.Command, cfg *config.Configuration) (*changelog.Grouped, error) {
	reader, err := newReader(cfg.HistoryBackend, cfg.RepoPath)
	if err != nil {
		return nil, clierrors.ConfigParseError(err)
	}

	var caps progress.TerminalCapabilities
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && !debugFlag {
		caps = progress.DetectTerminalCapabilities(f)
	}
	spin := progress.Start(cmd.ErrOrStderr(), caps, "Reading commit history")
	summaries, err := reader.Summaries(cmd.Context())
	spin.Stop()
	if err != nil {
		return nil, clierrors.HistoryUnavailable(err)
	}

	return changelog.Group(summaries), nil
}
