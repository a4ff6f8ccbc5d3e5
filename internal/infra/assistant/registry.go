// Package assistant resolves and spawns external AI coding assistants.
package assistant

import (
	"fmt"
	"strings"

	"github.com/qretaio/tasq/internal/domain"
)

// DefaultName is the assistant used when none is selected.
const DefaultName = "claude"

// builtin describes a known assistant command line.
type builtin struct {
	command        string
	args           []string
	autoAcceptArgs []string
	promptFlag     string // flag carrying the prompt; "" means positional
}

// builtins are the assistants known out of the box. Settings may
// override the command or append arguments per assistant.
var builtins = map[string]builtin{
	"claude": {
		command:        "claude",
		autoAcceptArgs: []string{"--dangerously-skip-permissions"},
		promptFlag:     "-p",
	},
	"codex": {
		command:        "codex",
		args:           []string{"exec"},
		autoAcceptArgs: []string{"--full-auto"},
	},
}

// Names returns the built-in assistant names.
func Names() []string {
	return []string{"claude", "codex"}
}

// Registry builds assistant commands from built-in definitions plus
// user overrides.
type Registry struct {
	overrides map[string]domain.AssistantConfig
}

// NewRegistry creates a registry with the given settings overrides.
func NewRegistry(overrides map[string]domain.AssistantConfig) *Registry {
	return &Registry{overrides: overrides}
}

// Resolve builds the invocation for the named assistant. An empty name
// selects the default. Unknown names resolve only if settings define a
// command for them.
func (r *Registry) Resolve(name, prompt, dir string, autoAccept bool) (*domain.AssistantCommand, error) {
	if name == "" {
		name = DefaultName
	}

	def, known := builtins[name]
	override, overridden := r.overrides[name]
	if !known && (!overridden || override.Command == "") {
		return nil, fmt.Errorf("%w: %q", domain.ErrAssistantNotFound, name)
	}

	command := def.command
	if overridden && override.Command != "" {
		command = override.Command
	}

	args := append([]string{}, def.args...)
	if autoAccept {
		args = append(args, def.autoAcceptArgs...)
	}
	if overridden && override.Args != "" {
		args = append(args, strings.Fields(override.Args)...)
	}
	if def.promptFlag != "" {
		args = append(args, def.promptFlag, prompt)
	} else {
		args = append(args, prompt)
	}

	return &domain.AssistantCommand{Program: command, Args: args, Dir: dir}, nil
}
