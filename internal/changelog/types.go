package changelog

// OtherTitle is the catch-all title for summaries matching no known prefix.
const OtherTitle = "Other"

// DefaultMaxEntries is the number of bullets rendered per category.
const DefaultMaxEntries = 30

// Heading is the top-level heading of every generated changelog.
const Heading = "# Changelog"

// Category maps a conventional-commit type word to its section title.
type Category struct {
	Prefix string
	Title  string
}

// categories is the fixed prefix table in rendering order.
var categories = []Category{
	{Prefix: "feat", Title: "Features"},
	{Prefix: "fix", Title: "Fixes"},
	{Prefix: "docs", Title: "Documentation"},
	{Prefix: "chore", Title: "Chores"},
	{Prefix: "refactor", Title: "Refactoring"},
	{Prefix: "test", Title: "Testing"},
}

// titleByPrefix is built once from categories for lookups.
var titleByPrefix = func() map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[c.Prefix] = c.Title
	}
	return m
}()

// Categories returns a copy of the category table in rendering order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Titles returns every section title in rendering order, catch-all last.
func Titles() []string {
	titles := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		titles = append(titles, c.Title)
	}
	return append(titles, OtherTitle)
}

// Grouped holds commit summaries bucketed by section title.
// Every title returned by Titles is present, even when empty.
type Grouped struct {
	entries map[string][]string
}

// NewGrouped returns a Grouped with every title initialized to an empty list.
func NewGrouped() *Grouped {
	g := &Grouped{entries: make(map[string][]string, len(categories)+1)}
	for _, title := range Titles() {
		g.entries[title] = []string{}
	}
	return g
}

// Entries returns the summaries filed under title, in read order.
func (g *Grouped) Entries(title string) []string {
	return g.entries[title]
}

func (g *Grouped) add(title, summary string) {
	g.entries[title] = append(g.entries[title], summary)
}
