// Package cli provides the command-line interface for tasq.
package cli

import (
	"github.com/qretaio/tasq/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTasks      = "tasks"
	groupDelegation = "delegation"
	groupSetup      = "setup"
)

// NewRootCommand creates the root command for tasq.
// It receives the container for dependency injection and version for
// display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasq",
		Short: "Checkbox task tracker for all your projects",
		Long: `tasq keeps per-project task lists in plain TASKS.md files and
aggregates them across every project under your configured roots.

Each project's tasks get short cross-project IDs like "p2" (second
task of the "planner" project), usable from any directory. Tasks can
be handed off to an AI coding assistant with "tasq do".`,
		Version: version,
		// Errors are printed once in main, not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Task Commands:"},
		&cobra.Group{ID: groupDelegation, Title: "Delegation Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	root.AddCommand(
		newListCommand(c),
		newInitCommand(c),
		newAddCommand(c),
		newStartCommand(c),
		newDoneCommand(c),
		newDoCommand(c),
		newShowCommand(c),
		newConfigCommand(c),
		newWatchCommand(c),
		newUnwatchCommand(c),
		newTUICommand(c),
	)
	return root
}
