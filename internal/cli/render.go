package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/qretaio/tasq/internal/domain"
)

// renderProjects writes one block per project with its tasks in a
// table. Global listings show compact IDs; local listings show 1-based
// positions.
func renderProjects(w io.Writer, projects []domain.ProjectResult) {
	first := true
	for _, p := range projects {
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		renderProjectHeader(w, &p)
		renderTasks(w, p.Tasks)
	}
}

func renderProjectHeader(w io.Writer, p *domain.ProjectResult) {
	title := p.Name
	if p.Doc != nil && p.Doc.Title != "" {
		title = p.Doc.Title
	}
	if p.RepoID != "" {
		fmt.Fprintf(w, "%s [%s]\n", title, p.RepoID)
	} else {
		fmt.Fprintf(w, "%s\n", title)
	}
}

func renderTasks(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "  (no tasks)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, t := range tasks {
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", id, t.Status.Icon(), t.Description)
	}
	_ = tw.Flush()
}
