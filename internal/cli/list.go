package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/infra/watcher"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Global  bool
		Pending bool
		All     bool
		Watch   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: groupTasks,
		Short:   "List tasks",
		Long: `List the current project's tasks, or every project's with --global.

Completed tasks are hidden unless --all is given. With --watch the
listing rerenders whenever a task file changes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			in := usecase.ListTasksInput{
				Dir:         cwd,
				Global:      opts.Global,
				PendingOnly: opts.Pending,
				All:         opts.All,
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			renderProjects(cmd.OutOrStdout(), out.Projects)

			if !opts.Watch {
				return nil
			}
			return watchAndRelist(cmd, uc, in, out.Projects)
		},
	}

	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "List tasks across all configured roots")
	cmd.Flags().BoolVarP(&opts.Pending, "pending", "p", false, "Show only pending tasks")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include completed tasks")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rerender when task files change")
	return cmd
}

// watchAndRelist blocks, reprinting the listing on each task file
// change until interrupted.
func watchAndRelist(cmd *cobra.Command, uc *usecase.ListTasks, in usecase.ListTasksInput, projects []domain.ProjectResult) error {
	paths := make([]string, 0, len(projects))
	for _, p := range projects {
		paths = append(paths, p.Path)
	}
	w, err := watcher.New(paths)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go w.Watch(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes:
			out, err := uc.Execute(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			renderProjects(cmd.OutOrStdout(), out.Projects)
		}
	}
}
