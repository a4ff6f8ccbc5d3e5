package cli

import (
	"fmt"
	"os"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newStartCommand creates the start command (mark in progress).
func newStartCommand(c *app.Container) *cobra.Command {
	return newMarkCommand(c, markSpec{
		use:     "start <task>",
		aliases: []string{"mark-in-progress"},
		short:   "Mark a task as in progress",
		status:  domain.StatusInProgress,
		verb:    "Started",
	})
}

// newDoneCommand creates the done command (mark completed).
func newDoneCommand(c *app.Container) *cobra.Command {
	return newMarkCommand(c, markSpec{
		use:     "done <task>",
		aliases: []string{"mark-done", "complete"},
		short:   "Mark a task as completed",
		status:  domain.StatusCompleted,
		verb:    "Completed",
	})
}

type markSpec struct {
	use     string
	short   string
	verb    string
	aliases []string
	status  domain.Status
}

// newMarkCommand builds a status-flipping command. The task argument
// is a compact ID, a local 1-based position, or a description
// substring.
func newMarkCommand(c *app.Container, spec markSpec) *cobra.Command {
	return &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		GroupID: groupTasks,
		Short:   spec.short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			out, err := c.SetStatusUseCase().Execute(cmd.Context(), usecase.SetStatusInput{
				Identifier: args[0],
				Dir:        cwd,
				Status:     spec.status,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s)\n",
				spec.verb, out.Task.Status.Icon(), out.Task.Description, out.ProjectName)
			return nil
		},
	}
}
