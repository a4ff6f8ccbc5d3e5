package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/qretaio/tasq/internal/domain"
)

// mockClock is a test double for domain.Clock pinned to a fixed time.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockSettingsStore is a test double for domain.SettingsStore.
type mockSettingsStore struct {
	settings *domain.Settings
	loadErr  error
}

func newMockSettingsStore(roots ...string) *mockSettingsStore {
	return &mockSettingsStore{settings: &domain.Settings{
		Roots:      roots,
		Assistants: map[string]domain.AssistantConfig{},
	}}
}

func (m *mockSettingsStore) Load() (*domain.Settings, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.settings, nil
}

func (m *mockSettingsStore) AddRoot(path string) error {
	for _, r := range m.settings.Roots {
		if r == path {
			return domain.ErrRootExists
		}
	}
	m.settings.Roots = append(m.settings.Roots, path)
	return nil
}

func (m *mockSettingsStore) RemoveRoot(path string) error {
	for i, r := range m.settings.Roots {
		if r == path {
			m.settings.Roots = append(m.settings.Roots[:i], m.settings.Roots[i+1:]...)
			return nil
		}
	}
	return domain.ErrRootNotFound
}

// mockScanner is a test double for domain.ProjectScanner.
type mockScanner struct {
	projects []domain.ProjectResult
	scanErr  error
	roots    []string // Roots from the last Scan call
}

func (m *mockScanner) Scan(_ context.Context, roots []string) ([]domain.ProjectResult, error) {
	m.roots = roots
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	return m.projects, nil
}

// mockTaskFileStore is an in-memory test double for
// domain.TaskFileStore backed by raw file content.
type mockTaskFileStore struct {
	files    map[string]string
	setErr   error
	setCalls int
}

func newMockTaskFileStore() *mockTaskFileStore {
	return &mockTaskFileStore{files: map[string]string{}}
}

func (m *mockTaskFileStore) Read(path string) (*domain.ParsedDocument, error) {
	raw, ok := m.files[path]
	if !ok {
		return nil, domain.ErrNoTaskFile
	}
	return domain.Parse(raw), nil
}

func (m *mockTaskFileStore) SetStatus(path string, line int, status domain.Status) (*domain.ParsedDocument, error) {
	m.setCalls++
	if m.setErr != nil {
		return nil, m.setErr
	}
	raw, ok := m.files[path]
	if !ok {
		return nil, domain.ErrNoTaskFile
	}
	lines := strings.Split(raw, "\n")
	if line < 0 || line >= len(lines) {
		return nil, domain.ErrLineOutOfRange
	}
	open := strings.Index(lines[line], "[")
	end := strings.Index(lines[line], "]")
	if open < 0 || end < open {
		return nil, domain.ErrNotATaskLine
	}
	lines[line] = lines[line][:open] + status.Icon() + lines[line][end+1:]
	m.files[path] = strings.Join(lines, "\n")
	return domain.Parse(m.files[path]), nil
}

func (m *mockTaskFileStore) Append(path, description string) (*domain.ParsedDocument, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.ErrEmptyDescription
	}
	raw, ok := m.files[path]
	if !ok {
		return nil, domain.ErrNoTaskFile
	}
	m.files[path] = raw + "\n- [ ] " + description
	return domain.Parse(m.files[path]), nil
}

func (m *mockTaskFileStore) Init(path, title, description string, force bool) error {
	if _, exists := m.files[path]; exists && !force {
		return domain.ErrTaskFileExists
	}
	content := "# " + title + "\n"
	if description != "" {
		content += "\n" + description + "\n"
	}
	content += "\n## Tasks\n"
	m.files[path] = content
	return nil
}

// mockGatherer is a test double for domain.ContextGatherer.
type mockGatherer struct {
	text      string
	err       error
	dir       string
	directive domain.ContextDirective
}

func (m *mockGatherer) Gather(_ context.Context, dir string, directive domain.ContextDirective) (string, error) {
	m.dir = dir
	m.directive = directive
	return m.text, m.err
}

// mockRunner is a test double for domain.AssistantRunner.
type mockRunner struct {
	runErr     error
	resolveErr error
	ran        []*domain.AssistantCommand
}

func (m *mockRunner) Resolve(name, prompt, dir string, autoAccept bool) (*domain.AssistantCommand, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	if name == "" {
		name = "claude"
	}
	args := []string{}
	if autoAccept {
		args = append(args, "--auto")
	}
	args = append(args, prompt)
	return &domain.AssistantCommand{Program: name, Args: args, Dir: dir}, nil
}

func (m *mockRunner) Run(_ context.Context, cmd *domain.AssistantCommand) error {
	m.ran = append(m.ran, cmd)
	return m.runErr
}

// scannedProject builds an annotated project over raw task-file text.
func scannedProject(name, repoID, raw string) domain.ProjectResult {
	p := domain.ProjectResult{
		Name: name,
		Dir:  "/src/" + name,
		Path: fmt.Sprintf("/src/%s/%s", name, domain.TaskFileName),
		Doc:  domain.Parse(raw),
	}
	p.AnnotateTasks(repoID)
	return p
}
