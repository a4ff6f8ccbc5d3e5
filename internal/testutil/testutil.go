// Package testutil provides shared fixtures for command-level tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/qretaio/tasq/internal/app"
	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/infra/assistant"
	"github.com/qretaio/tasq/internal/infra/gather"
	"github.com/qretaio/tasq/internal/infra/scanner"
	"github.com/qretaio/tasq/internal/infra/settings"
	"github.com/qretaio/tasq/internal/infra/taskfile"
	"github.com/stretchr/testify/require"
)

// MockRunner records assistant invocations instead of spawning
// processes.
type MockRunner struct {
	registry *assistant.Registry

	Ran    []*domain.AssistantCommand
	RunErr error
}

// NewMockRunner creates a MockRunner with the built-in registry.
func NewMockRunner() *MockRunner {
	return &MockRunner{registry: assistant.NewRegistry(nil)}
}

// Resolve builds the command via the real registry.
func (m *MockRunner) Resolve(name, prompt, dir string, autoAccept bool) (*domain.AssistantCommand, error) {
	return m.registry.Resolve(name, prompt, dir, autoAccept)
}

// Run records the command.
func (m *MockRunner) Run(_ context.Context, cmd *domain.AssistantCommand) error {
	m.Ran = append(m.Ran, cmd)
	return m.RunErr
}

// Fixture is a fully wired container over temporary directories.
type Fixture struct {
	Container *app.Container
	Runner    *MockRunner
	Root      string // Scan root holding the projects
}

// NewFixture builds a container whose settings, scan root and state
// directory all live under temporary directories.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	root := t.TempDir()
	store := settings.NewStoreAt(filepath.Join(t.TempDir(), settings.FileName))
	require.NoError(t, store.AddRoot(root))
	require.NoError(t, store.RemoveRoot(settings.DefaultRoot))

	runner := NewMockRunner()
	c := &app.Container{
		Settings:  store,
		Scanner:   scanner.New(nil),
		TaskFiles: taskfile.New(),
		Gatherer:  gather.New(nil, nil),
		Runner:    runner,
		Clock:     domain.RealClock{},
		StateDir:  t.TempDir(),
	}
	return &Fixture{Container: c, Runner: runner, Root: root}
}

// WriteProject creates a project directory with the given task file
// content under the fixture's scan root and returns its path.
func (f *Fixture) WriteProject(t *testing.T, name, content string) string {
	t.Helper()
	dir := filepath.Join(f.Root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(domain.TaskFilePath(dir), []byte(content), 0o644))
	return dir
}
