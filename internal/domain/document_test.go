package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SectionTagging(t *testing.T) {
	doc := Parse("# T\n## Goals\n- [ ] G1\n## Tasks\n- [x] K1")

	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "G1", doc.Tasks[0].Description)
	assert.Equal(t, "goals", doc.Tasks[0].Section)
	assert.Equal(t, StatusPending, doc.Tasks[0].Status)
	assert.Equal(t, "K1", doc.Tasks[1].Description)
	assert.Equal(t, "tasks", doc.Tasks[1].Section)
	assert.Equal(t, StatusCompleted, doc.Tasks[1].Status)

	goals := doc.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "G1", goals[0].Description)
	assert.Equal(t, StatusPending, goals[0].Status)
}

func TestParse_TitleAndDescription(t *testing.T) {
	doc := Parse("# My Project\nFirst line.\nSecond line.\n\n## Tasks\n- [ ] a")

	assert.Equal(t, "My Project", doc.Title)
	assert.Equal(t, "First line.\nSecond line.", doc.Description)
}

func TestParse_FirstTitleWins(t *testing.T) {
	doc := Parse("# First\n# Second\n")
	assert.Equal(t, "First", doc.Title)
}

func TestParse_StatusMarkers(t *testing.T) {
	tests := []struct {
		line string
		want Status
	}{
		{"- [ ] pending task", StatusPending},
		{"- [] also pending", StatusPending},
		{"- [~] in progress", StatusInProgress},
		{"- [x] done", StatusCompleted},
		{"- [X] also done", StatusCompleted},
	}
	for _, tt := range tests {
		doc := Parse(tt.line)
		require.Len(t, doc.Tasks, 1, "line %q", tt.line)
		assert.Equal(t, tt.want, doc.Tasks[0].Status, "line %q", tt.line)
	}
}

func TestParse_TaskBeforeAnySectionHasNoTag(t *testing.T) {
	doc := Parse("- [ ] orphan\n# T\n- [ ] under title\n## Later\n- [ ] tagged")

	require.Len(t, doc.Tasks, 3)
	assert.Empty(t, doc.Tasks[0].Section)
	assert.Empty(t, doc.Tasks[1].Section, "header pseudo-section carries no tag")
	assert.Equal(t, "later", doc.Tasks[2].Section)
}

func TestParse_NotesCapture(t *testing.T) {
	doc := Parse("# T\n## Tasks\nRemember the build flags.\nAnd the env vars.\n- [ ] first\nnot notes anymore\n- [ ] second")

	assert.Equal(t, "Remember the build flags.\nAnd the env vars.", doc.Notes)
	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "first", doc.Tasks[0].Description)
}

func TestParse_NotesResetPerSectionEntry(t *testing.T) {
	// A repeated Tasks heading captures notes again.
	doc := Parse("## Tasks\nfirst notes\n- [ ] a\n## Other\n## Tasks\nmore notes\n- [ ] b")

	assert.Equal(t, "first notes\nmore notes", doc.Notes)
}

func TestParse_CodeFenceSuppressesStructure(t *testing.T) {
	doc := Parse("# T\n## Tasks\n```bash\n# not a heading\n- [ ] not a task\n```\n- [ ] real task")

	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "real task", doc.Tasks[0].Description)
	assert.Equal(t, "T", doc.Title)
}

func TestParse_Frontmatter(t *testing.T) {
	raw := "---\ntitle: Overridden\ndescription: From frontmatter\n---\n# Body Title\n## Tasks\n- [ ] a"
	doc := Parse(raw)

	assert.Equal(t, "Overridden", doc.Title)
	assert.Equal(t, "From frontmatter", doc.Description)
	require.Len(t, doc.Tasks, 1)
	// Verbatim lines are retained, frontmatter included.
	assert.Equal(t, strings.Split(raw, "\n"), doc.Lines)
}

func TestParse_MalformedFrontmatterFallsThrough(t *testing.T) {
	doc := Parse("---\n:::not yaml at all {{{\n---\n# Real Title\n- [ ] a")
	assert.Equal(t, "Real Title", doc.Title)
	require.Len(t, doc.Tasks, 1)
}

func TestParse_LineIndicesMatchSource(t *testing.T) {
	raw := "# T\n\n## Tasks\n- [ ] a\ntext\n- [x] b"
	doc := Parse(raw)

	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, 3, doc.Tasks[0].Line)
	assert.Equal(t, 5, doc.Tasks[1].Line)
	for _, task := range doc.Tasks {
		assert.True(t, checkboxPattern.MatchString(doc.Lines[task.Line]))
	}
}

func TestParse_IdempotentReparse(t *testing.T) {
	raw := "# T\nintro\n## Goals\n- [ ] G1\n## Tasks\nnotes here\n- [x] K1\n- [~] K2\n\ntrailing text"
	first := Parse(raw)
	second := Parse(strings.Join(first.Lines, "\n"))

	assert.Equal(t, first.Tasks, second.Tasks)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.Notes, second.Notes)
}

func TestParse_EmptyInput(t *testing.T) {
	doc := Parse("")
	assert.Empty(t, doc.Tasks)
	assert.Empty(t, doc.Title)
	assert.Nil(t, doc.Goals())
}

func TestParsedDocument_Open(t *testing.T) {
	doc := Parse("- [ ] a\n- [x] b\n- [~] c")
	assert.Equal(t, []string{"a", "c"}, doc.Open())
}
