package changelog

import "strings"

// Prefix returns the classification key of a summary: the text before the
// first colon (or the whole summary when it has none), lowercased and trimmed.
func Prefix(summary string) string {
	candidate, _, _ := strings.Cut(summary, ":")
	return strings.ToLower(strings.TrimSpace(candidate))
}

// Classify returns the section title a summary belongs to.
func Classify(summary string) string {
	if title, ok := titleByPrefix[Prefix(summary)]; ok {
		return title
	}
	return OtherTitle
}

// Group files each summary, unmodified, under exactly one section title.
// Read order is preserved within each section.
func Group(summaries []string) *Grouped {
	g := NewGrouped()
	for _, s := range summaries {
		g.add(Classify(s), s)
	}
	return g
}
