package cli

import (
	"fmt"
	"sort"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/infra/assistant"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command. Running it bare is the
// same as "config show".
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: groupSetup,
		Short:   "Show and edit the active configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd, c)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the active configuration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return showConfig(cmd, c)
			},
		},
		&cobra.Command{
			Use:   "add-path <dir>",
			Short: "Add a directory to the scanned roots",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := c.ManageRootsUseCase().Add(cmd.Context(), usecase.ManageRootsInput{Path: args[0]})
				if err != nil {
					return err
				}
				printRoots(cmd, out.Roots)
				return nil
			},
		},
	)
	return cmd
}

func showConfig(cmd *cobra.Command, c *app.Container) error {
	out, err := c.ShowSettingsUseCase().Execute(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if out.Path != "" {
		fmt.Fprintf(w, "Settings: %s\n\n", out.Path)
	}
	fmt.Fprintln(w, "Roots:")
	for _, r := range out.Settings.Roots {
		fmt.Fprintf(w, "  %s\n", r)
	}

	fmt.Fprintln(w, "\nAssistants:")
	names := assistant.Names()
	for name := range out.Settings.Assistants {
		names = appendUnique(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line := "  " + name
		if name == assistant.DefaultName {
			line += " (default)"
		}
		if override, ok := out.Settings.Assistants[name]; ok && override.Command != "" {
			line += " -> " + override.Command
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
