package domain

import (
	"fmt"
	"strings"
)

// RelatedSummary is a best-effort summary of a related project resolved
// from the context directive's repo list.
type RelatedSummary struct {
	Name      string
	Goals     []Task
	OpenTasks []string
}

// PromptInput carries everything the prompt builder needs. The builder
// itself has no side effects; writing a transcript or spawning the
// assistant is the caller's responsibility.
type PromptInput struct {
	Project *ProjectResult
	Task    Task
	Related []RelatedSummary
	Context string // Externally gathered context text
}

// BuildPrompt assembles the instruction document handed to the external
// coding assistant. Output is deterministic given identical inputs.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder
	p := in.Project

	fmt.Fprintf(&b, "You are working in the project %q", p.Name)
	if p.RepoID != "" {
		fmt.Fprintf(&b, " (task namespace %q)", p.RepoID)
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Task file: %s\n\n", p.Path)

	fmt.Fprintf(&b, "Your task is %s: %s\n\n", in.Task.ID, in.Task.Description)

	if p.Doc.Description != "" {
		b.WriteString("## Project description\n\n")
		b.WriteString(p.Doc.Description)
		b.WriteString("\n\n")
	}
	if p.Doc.Notes != "" {
		b.WriteString("## Notes\n\n")
		b.WriteString(p.Doc.Notes)
		b.WriteString("\n\n")
	}

	if goals := p.Doc.Goals(); len(goals) > 0 {
		b.WriteString("## Goals\n\n")
		for _, g := range goals {
			writeTaskLine(&b, g, false, "")
		}
		b.WriteString("\n")
	}

	b.WriteString("## All tasks\n\n")
	for _, t := range p.Tasks {
		writeTaskLine(&b, t, t.Line == in.Task.Line, "")
	}
	b.WriteString("\n")

	for _, rel := range in.Related {
		fmt.Fprintf(&b, "## Related project: %s\n\n", rel.Name)
		for _, g := range rel.Goals {
			writeTaskLine(&b, g, false, "  ")
		}
		for _, desc := range rel.OpenTasks {
			fmt.Fprintf(&b, "  [ ] %s\n", desc)
		}
		b.WriteString("\n")
	}

	if in.Context != "" {
		b.WriteString("## Gathered context\n\n")
		b.WriteString(in.Context)
		if !strings.HasSuffix(in.Context, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Complete the task above. When you are done, update its checkbox ")
	fmt.Fprintf(&b, "in %s to [x].\n", TaskFileName)
	return b.String()
}

// writeTaskLine renders one task with its status icon at the given
// indent, marking the active task.
func writeTaskLine(b *strings.Builder, t Task, current bool, indent string) {
	b.WriteString(indent)
	b.WriteString(t.Status.Icon())
	b.WriteString(" ")
	if t.ID != "" {
		fmt.Fprintf(b, "%s: ", t.ID)
	}
	b.WriteString(t.Description)
	if current {
		b.WriteString("  <- current task")
	}
	b.WriteString("\n")
}
