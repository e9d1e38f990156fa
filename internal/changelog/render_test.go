package changelog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

func TestRenderString(t *testing.T) {
	tests := map[string]struct {
		summaries []string
		want      string
	}{
		"feat fix and other": {
			summaries: []string{"feat: add login", "fix: null check", "random commit"},
			want: "# Changelog\n\n## 2024-03-09\n\n" +
				"### Features\n- feat: add login\n\n" +
				"### Fixes\n- fix: null check\n\n" +
				"### Other\n- random commit\n\n",
		},
		"no summaries renders headings only": {
			summaries: nil,
			want:      "# Changelog\n\n## 2024-03-09\n\n",
		},
		"declared order regardless of read order": {
			summaries: []string{"misc", "test: t", "chore: c", "docs: d", "feat: f"},
			want: "# Changelog\n\n## 2024-03-09\n\n" +
				"### Features\n- feat: f\n\n" +
				"### Documentation\n- docs: d\n\n" +
				"### Chores\n- chore: c\n\n" +
				"### Testing\n- test: t\n\n" +
				"### Other\n- misc\n\n",
		},
		"weird colons fall to other": {
			summaries: []string{"weird:::colon stuff"},
			want:      "# Changelog\n\n## 2024-03-09\n\n### Other\n- weird:::colon stuff\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RenderString(Group(tt.summaries), testDate, DefaultMaxEntries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_OmitsEmptyCategories(t *testing.T) {
	got, err := RenderString(Group([]string{"fix: only"}), testDate, DefaultMaxEntries)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(got, "### "))
	for _, title := range []string{"Features", "Documentation", "Chores", "Refactoring", "Testing", OtherTitle} {
		assert.NotContains(t, got, "### "+title)
	}
}

func TestRender_CapsBulletsPerCategory(t *testing.T) {
	var summaries []string
	for i := 0; i < 35; i++ {
		summaries = append(summaries, fmt.Sprintf("feat: change %d", i))
	}

	got, err := RenderString(Group(summaries), testDate, DefaultMaxEntries)
	require.NoError(t, err)

	assert.Equal(t, 30, strings.Count(got, "\n- "))
	assert.Contains(t, got, "- feat: change 0\n")
	assert.Contains(t, got, "- feat: change 29\n")
	assert.NotContains(t, got, "change 30")
	assert.NotContains(t, got, "more")

	first := strings.Index(got, "change 0\n")
	last := strings.Index(got, "change 29\n")
	assert.Less(t, first, last, "bullets keep read order")
}

func TestRender_CustomLimit(t *testing.T) {
	tests := map[string]struct {
		limit int
		want  int
	}{
		"smaller limit":       {limit: 2, want: 2},
		"zero uses default":   {limit: 0, want: DefaultMaxEntries},
		"negative is default": {limit: -1, want: DefaultMaxEntries},
	}

	var summaries []string
	for i := 0; i < 40; i++ {
		summaries = append(summaries, fmt.Sprintf("fix: %d", i))
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RenderString(Group(summaries), testDate, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Count(got, "\n- "))
		})
	}
}

func TestRender_DateIsUTC(t *testing.T) {
	// 23:30 on the 9th in UTC-5 is already the 10th in UTC.
	local := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))

	got, err := RenderString(Group(nil), local, DefaultMaxEntries)
	require.NoError(t, err)
	assert.Contains(t, got, "## 2024-03-10\n")
}

func TestRender_Idempotent(t *testing.T) {
	g := Group([]string{"feat: a", "fix: b"})

	first, err := RenderString(g, testDate, DefaultMaxEntries)
	require.NoError(t, err)
	second, err := RenderString(g, testDate, DefaultMaxEntries)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriterError(t *testing.T) {
	err := Render(failingWriter{}, Group([]string{"feat: a"}), testDate, DefaultMaxEntries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering header")
}
