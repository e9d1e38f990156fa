package changelog

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// CategoryStyle defines the color and icon for a changelog category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps section titles to their terminal styling.
var categoryStyles = map[string]CategoryStyle{
	"Features":      {Color: color.New(color.FgGreen), Icon: "✓"},
	"Fixes":         {Color: color.New(color.FgYellow), Icon: "⚡"},
	"Documentation": {Color: color.New(color.FgCyan), Icon: "✎"},
	"Chores":        {Color: color.New(color.FgWhite), Icon: "•"},
	"Refactoring":   {Color: color.New(color.FgBlue), Icon: "~"},
	"Testing":       {Color: color.New(color.FgMagenta), Icon: "✔"},
	OtherTitle:      {Color: color.New(color.Faint), Icon: "·"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain bool // Disable colors and icons
}

// FormatTerminal writes the section for date with terminal styling.
// With opts.Plain it writes exactly what Render would.
func FormatTerminal(w io.Writer, g *Grouped, date time.Time, limit int, opts FormatOptions) error {
	if opts.Plain {
		return Render(w, g, date, limit)
	}
	if limit < 1 {
		limit = DefaultMaxEntries
	}

	bold := color.New(color.Bold).SprintFunc()
	if _, err := fmt.Fprintf(w, "%s\n\n## %s\n", bold(Heading), bold(date.UTC().Format(DateLayout))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, title := range Titles() {
		entries := g.Entries(title)
		if len(entries) == 0 {
			continue
		}
		if err := writeStyledCategory(w, title, entries, limit); err != nil {
			return fmt.Errorf("formatting %s: %w", title, err)
		}
	}

	return nil
}

// writeStyledCategory writes a colored category header and its bullets,
// noting how many entries the rendered file will leave out.
func writeStyledCategory(w io.Writer, title string, entries []string, limit int) error {
	style := categoryStyles[title]
	colored := style.Color.SprintFunc()

	if _, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(title)); err != nil {
		return err
	}
	for _, entry := range truncate(entries, limit) {
		if _, err := fmt.Fprintf(w, "  - %s\n", entry); err != nil {
			return err
		}
	}
	if hidden := len(entries) - limit; hidden > 0 {
		dim := color.New(color.Faint).SprintFunc()
		if _, err := fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("(%d older entries omitted)", hidden))); err != nil {
			return err
		}
	}
	return nil
}
