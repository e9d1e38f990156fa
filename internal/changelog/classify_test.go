package changelog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	tests := map[string]struct {
		summary string
		want    string
	}{
		"conventional type":       {summary: "feat: add login", want: "feat"},
		"uppercase is lowered":    {summary: "FIX: null check", want: "fix"},
		"surrounding whitespace":  {summary: "  docs  : readme", want: "docs"},
		"no colon uses whole":     {summary: "random commit", want: "random commit"},
		"only first colon counts": {summary: "weird:::colon stuff", want: "weird"},
		"lone colon is empty":     {summary: ":", want: ""},
		"scoped type kept intact": {summary: "feat(api): add endpoint", want: "feat(api)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prefix(tt.summary))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		summary string
		want    string
	}{
		"feat":                   {summary: "feat: add login", want: "Features"},
		"fix":                    {summary: "fix: null check", want: "Fixes"},
		"docs":                   {summary: "docs: update readme", want: "Documentation"},
		"chore":                  {summary: "chore: bump deps", want: "Chores"},
		"refactor":               {summary: "refactor: split parser", want: "Refactoring"},
		"test":                   {summary: "test: cover merge", want: "Testing"},
		"case insensitive":       {summary: "Feat: shout", want: "Features"},
		"no colon":               {summary: "random commit", want: OtherTitle},
		"unknown prefix":         {summary: "weird:::colon stuff", want: OtherTitle},
		"lone colon":             {summary: ":", want: OtherTitle},
		"bare key without colon": {summary: "fix", want: "Fixes"},
		"scoped type":            {summary: "feat(api): add endpoint", want: OtherTitle},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.summary))
		})
	}
}

func TestGroup_PartitionsEverySummary(t *testing.T) {
	summaries := []string{
		"feat: a", "fix: b", "misc", "feat: c", "docs: d", ":", "chore: e",
		"refactor: f", "test: g", "feat: a",
	}

	g := Group(summaries)

	total := 0
	seen := make(map[string]int)
	for _, title := range Titles() {
		for _, s := range g.Entries(title) {
			seen[s]++
			total++
		}
	}
	assert.Equal(t, len(summaries), total)
	assert.Equal(t, 2, seen["feat: a"], "duplicates are preserved")
}

func TestGroup_PreservesReadOrderAndText(t *testing.T) {
	g := Group([]string{"feat: newest", "FIX: middle", "feat: oldest"})

	assert.Equal(t, []string{"feat: newest", "feat: oldest"}, g.Entries("Features"))
	assert.Equal(t, []string{"FIX: middle"}, g.Entries("Fixes"), "original text is kept")
}

func TestGroup_AllTitlesPresent(t *testing.T) {
	g := Group(nil)

	for _, title := range Titles() {
		assert.NotNil(t, g.Entries(title), "title %q should exist", title)
		assert.Empty(t, g.Entries(title))
	}
	assert.Nil(t, g.Entries("Security"))
}

func TestTitles_OrderCatchAllLast(t *testing.T) {
	assert.Equal(t, []string{
		"Features", "Fixes", "Documentation", "Chores", "Refactoring", "Testing", OtherTitle,
	}, Titles())
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)
	cats[0].Title = "Mutated"

	assert.Equal(t, "Features", Categories()[0].Title)
	assert.Equal(t, "Features", Classify("feat: x"))
}

func TestGroup_Deterministic(t *testing.T) {
	var summaries []string
	for i := 0; i < 50; i++ {
		summaries = append(summaries, fmt.Sprintf("fix: bug %d", i))
	}

	assert.Equal(t, Group(summaries), Group(summaries))
}
