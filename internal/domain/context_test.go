package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContext_Basic(t *testing.T) {
	raw := "# T\n## Context\nfiles: src/**/*.go, docs/*.md\nrepos: ../shared\n## Tasks\n- [ ] a"
	d := ParseContext(raw)

	assert.Equal(t, []string{"src/**/*.go", "docs/*.md"}, d.Files)
	assert.Equal(t, []string{"../shared"}, d.Repos)
}

func TestParseContext_CaseInsensitiveAndAccumulating(t *testing.T) {
	raw := "## CONTEXT\nFiles: a.go\nfiles: b.go,,  c.go\nREPOS: ../x\nrepos: ../y"
	d := ParseContext(raw)

	assert.Equal(t, []string{"a.go", "b.go", "c.go"}, d.Files)
	assert.Equal(t, []string{"../x", "../y"}, d.Repos)
}

func TestParseContext_StopsAtNextHeading(t *testing.T) {
	raw := "## Context\nfiles: a.go\n## Tasks\nfiles: ignored.go"
	d := ParseContext(raw)

	assert.Equal(t, []string{"a.go"}, d.Files)
	assert.Empty(t, d.Repos)
}

func TestParseContext_NoDirective(t *testing.T) {
	d := ParseContext("# T\n## Tasks\n- [ ] a")
	assert.True(t, d.IsZero())
}
