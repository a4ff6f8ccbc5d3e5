package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/tui/browser"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for the interactive task
// browser.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		GroupID: groupTasks,
		Short:   "Browse and update tasks interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			model := browser.New(c.ScanProjectsUseCase(), c.SetStatusUseCase())
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
