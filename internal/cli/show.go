package cli

import (
	"fmt"
	"strings"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <project>",
		GroupID: groupTasks,
		Short:   "Show one project's task file in detail",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowProjectUseCase().Execute(cmd.Context(), usecase.ShowProjectInput{
				Name: args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := out.Project
			renderProjectHeader(w, p)
			fmt.Fprintf(w, "%s\n", p.Path)
			if p.Doc.Description != "" {
				fmt.Fprintf(w, "\n%s\n", p.Doc.Description)
			}
			if goals := p.Doc.Goals(); len(goals) > 0 {
				fmt.Fprintln(w, "\nGoals:")
				renderTasks(w, goals)
			}
			fmt.Fprintln(w, "\nTasks:")
			renderTasks(w, p.Tasks)
			if p.Doc.Notes != "" {
				fmt.Fprintf(w, "\nNotes:\n%s\n", p.Doc.Notes)
			}
			directive := domain.ParseContext(strings.Join(p.Doc.Lines, "\n"))
			if !directive.IsZero() {
				fmt.Fprintln(w, "\nContext:")
				if len(directive.Files) > 0 {
					fmt.Fprintf(w, "  files: %s\n", strings.Join(directive.Files, ", "))
				}
				if len(directive.Repos) > 0 {
					fmt.Fprintf(w, "  repos: %s\n", strings.Join(directive.Repos, ", "))
				}
			}
			return nil
		},
	}
	return cmd
}
