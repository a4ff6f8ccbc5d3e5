package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	projects := scannedProjects(t)
	loc, err := Locate("p2", projects)
	require.NoError(t, err)

	prompt := BuildPrompt(PromptInput{
		Project: loc.Project,
		Task:    loc.Task,
		Related: []RelatedSummary{{
			Name:      "shared",
			OpenTasks: []string{"extract common client"},
		}},
		Context: "git branch: main",
	})

	assert.Contains(t, prompt, `"planner"`)
	assert.Contains(t, prompt, "p2: second task")
	assert.Contains(t, prompt, "<- current task")
	assert.Contains(t, prompt, "[x] p3: third task")
	assert.Contains(t, prompt, "## Related project: shared")
	assert.Contains(t, prompt, "extract common client")
	assert.Contains(t, prompt, "## Gathered context")
	assert.Contains(t, prompt, "git branch: main")
	assert.NotContains(t, prompt, "## Notes", "no notes section when notes empty")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	projects := scannedProjects(t)
	loc, err := Locate("a1", projects)
	require.NoError(t, err)

	in := PromptInput{Project: loc.Project, Task: loc.Task}
	assert.Equal(t, BuildPrompt(in), BuildPrompt(in))
}

func TestBuildPrompt_MarksOnlyActiveTask(t *testing.T) {
	projects := scannedProjects(t)
	loc, err := Locate("p1", projects)
	require.NoError(t, err)

	prompt := BuildPrompt(PromptInput{Project: loc.Project, Task: loc.Task})
	assert.Equal(t, 1, strings.Count(prompt, "<- current task"))
}
