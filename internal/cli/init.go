package cli

import (
	"fmt"
	"os"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Force       bool
	}

	cmd := &cobra.Command{
		Use:     "init",
		GroupID: groupTasks,
		Short:   "Create a task file in the current directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			out, err := c.InitFileUseCase().Execute(cmd.Context(), usecase.InitFileInput{
				Dir:         cwd,
				Title:       opts.Title,
				Description: opts.Description,
				Force:       opts.Force,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Document title (default: directory name)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Project description")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing task file")
	return cmd
}
