package cli

import (
	"fmt"
	"os"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/usecase"
	"github.com/spf13/cobra"
)

// newDoCommand creates the do command for delegating a task to an
// external coding assistant.
func newDoCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Assistant  string
		AutoAccept bool
		Print      bool
	}

	cmd := &cobra.Command{
		Use:     "do <task>",
		GroupID: groupDelegation,
		Short:   "Hand a task to an AI coding assistant",
		Long: `Resolve a task by compact ID or description substring, build a prompt
from its task file plus gathered project context, and run the
assistant in the project's directory.

The task is marked in progress before the assistant starts. A failing
assistant is reported as a warning; the task file may still have been
updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			out, err := c.DoTaskUseCase().Execute(cmd.Context(), usecase.DoTaskInput{
				Identifier: args[0],
				Dir:        cwd,
				Assistant:  opts.Assistant,
				AutoAccept: opts.AutoAccept,
				PrintOnly:  opts.Print,
			})
			if err != nil {
				return err
			}

			if opts.Print {
				fmt.Fprint(cmd.OutOrStdout(), out.Prompt)
				return nil
			}
			if out.Warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", out.Warning)
			}
			if out.TranscriptPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Prompt saved to %s\n", out.TranscriptPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Assistant, "assistant", "", "Assistant to use (default: claude)")
	cmd.Flags().BoolVar(&opts.AutoAccept, "auto-accept", false, "Let the assistant run without confirmation prompts")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "Print the prompt instead of running the assistant")
	return cmd
}
