package assistant

import (
	"context"
	"os"
	"os/exec"

	"github.com/qretaio/tasq/internal/domain"
)

// Ensure Runner implements domain.AssistantRunner.
var _ domain.AssistantRunner = (*Runner)(nil)

// Runner spawns assistant processes with stdio attached to the
// terminal. The assistant's lifetime is independent of tasq: once the
// process is started, the delegation's outcome is its own.
type Runner struct {
	registry *Registry
}

// NewRunner creates a Runner backed by the given registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Resolve builds the command for the named assistant and prompt.
func (r *Runner) Resolve(name, prompt, dir string, autoAccept bool) (*domain.AssistantCommand, error) {
	return r.registry.Resolve(name, prompt, dir, autoAccept)
}

// Run executes the command interactively.
func (r *Runner) Run(ctx context.Context, cmd *domain.AssistantCommand) error {
	// #nosec G204 - program and args come from the assistant registry
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	return execCmd.Run()
}
