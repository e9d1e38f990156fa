package changelog

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DateLayout is the layout of the dated section heading.
const DateLayout = "2006-01-02"

// Render writes the changelog section for date to w: the top-level heading,
// a "## YYYY-MM-DD" heading in UTC, and one "###" section per non-empty
// category holding at most limit bullets. A limit below 1 means DefaultMaxEntries.
//
// The function is idempotent - given the same input, it produces identical output.
func Render(w io.Writer, g *Grouped, date time.Time, limit int) error {
	if limit < 1 {
		limit = DefaultMaxEntries
	}

	if err := renderHeader(w, date); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	for _, title := range Titles() {
		entries := g.Entries(title)
		if len(entries) == 0 {
			continue
		}
		if err := renderCategory(w, title, truncate(entries, limit)); err != nil {
			return fmt.Errorf("rendering %s: %w", title, err)
		}
	}

	return nil
}

// RenderString is a convenience function that renders to a string.
func RenderString(g *Grouped, date time.Time, limit int) (string, error) {
	var b strings.Builder
	if err := Render(&b, g, date, limit); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderHeader writes the top-level and dated headings.
func renderHeader(w io.Writer, date time.Time) error {
	_, err := fmt.Fprintf(w, "%s\n\n## %s\n\n", Heading, date.UTC().Format(DateLayout))
	return err
}

// renderCategory writes a single category section with its entries.
func renderCategory(w io.Writer, title string, entries []string) error {
	if _, err := io.WriteString(w, "### "+title+"\n"); err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := io.WriteString(w, "- "+entry+"\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// truncate returns at most the first n entries.
func truncate(entries []string, n int) []string {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
