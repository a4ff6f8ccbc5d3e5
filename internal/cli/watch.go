package cli

import (
	"fmt"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newWatchCommand creates the watch command for registering a scan
// root.
func newWatchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "watch <dir>",
		GroupID: groupSetup,
		Short:   "Add a directory to the scanned roots",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ManageRootsUseCase().Add(cmd.Context(), usecase.ManageRootsInput{Path: args[0]})
			if err != nil {
				return err
			}
			printRoots(cmd, out.Roots)
			return nil
		},
	}
}

// newUnwatchCommand creates the unwatch command for removing a scan
// root.
func newUnwatchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "unwatch <dir>",
		GroupID: groupSetup,
		Short:   "Remove a directory from the scanned roots",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ManageRootsUseCase().Remove(cmd.Context(), usecase.ManageRootsInput{Path: args[0]})
			if err != nil {
				return err
			}
			printRoots(cmd, out.Roots)
			return nil
		},
	}
}

func printRoots(cmd *cobra.Command, roots []string) {
	fmt.Fprintln(cmd.OutOrStdout(), "Roots:")
	for _, r := range roots {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r)
	}
}
