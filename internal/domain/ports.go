package domain

import (
	"context"
	"time"
)

// Settings is the persisted user configuration.
type Settings struct {
	Roots      []string                   // Ordered scan roots, "~" shorthand allowed
	Assistants map[string]AssistantConfig // Per-assistant overrides
	Log        LogConfig                  // Logging settings
}

// AssistantConfig overrides a built-in assistant definition.
type AssistantConfig struct {
	Command string // Binary to invoke (overrides the built-in command)
	Args    string // Extra arguments appended to the built-in ones
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// SettingsStore persists the user configuration.
type SettingsStore interface {
	// Load returns the settings, creating defaults on first use.
	Load() (*Settings, error)

	// AddRoot appends a scan root. Returns ErrRootExists on duplicates.
	AddRoot(path string) error

	// RemoveRoot removes a scan root. Returns ErrRootNotFound if absent.
	RemoveRoot(path string) error
}

// TaskFileStore reads and mutates a single task file.
type TaskFileStore interface {
	// Read parses the task file at path.
	Read(path string) (*ParsedDocument, error)

	// SetStatus rewrites the checkbox marker on one line, leaving every
	// other byte of the file unchanged, and returns the updated document.
	SetStatus(path string, line int, status Status) (*ParsedDocument, error)

	// Append adds a pending task to the end of the tasks section.
	Append(path, description string) (*ParsedDocument, error)

	// Init creates a new task file. Returns ErrTaskFileExists unless
	// force is set.
	Init(path, title, description string, force bool) error
}

// ProjectScanner locates and parses task files under the given roots.
type ProjectScanner interface {
	// Scan walks the roots and returns one result per readable task
	// file, tasks annotated with compact IDs in scan order.
	Scan(ctx context.Context, roots []string) ([]ProjectResult, error)
}

// ContextGatherer collects free-form context text for a project.
type ContextGatherer interface {
	// Gather returns context for the project directory, honoring the
	// directive's file globs. Best effort; an empty string is valid.
	Gather(ctx context.Context, dir string, directive ContextDirective) (string, error)
}

// GitSummarizer reports version-control state for a project.
type GitSummarizer interface {
	// Summary returns a short branch/status/log digest, or ok=false if
	// the directory is not a git repository.
	Summary(dir string) (summary string, ok bool)
}

// AssistantCommand is a fully resolved assistant invocation.
type AssistantCommand struct {
	Program string
	Args    []string
	Dir     string
}

// AssistantRunner spawns the external coding assistant.
type AssistantRunner interface {
	// Resolve builds the command for the named assistant and prompt.
	Resolve(name, prompt, dir string, autoAccept bool) (*AssistantCommand, error)

	// Run executes the command with stdio attached to the terminal.
	Run(ctx context.Context, cmd *AssistantCommand) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
