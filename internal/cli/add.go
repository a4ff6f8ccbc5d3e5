package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <description>...",
		GroupID: groupTasks,
		Short:   "Add a pending task to the current project",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Dir:         cwd,
				Description: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", out.Position, out.Task.Description)
			return nil
		},
	}
	return cmd
}
