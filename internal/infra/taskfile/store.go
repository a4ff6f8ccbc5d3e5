// Package taskfile reads and mutates a single markdown task file.
package taskfile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/qretaio/tasq/internal/domain"
)

// Ensure Store implements domain.TaskFileStore.
var _ domain.TaskFileStore = (*Store)(nil)

// markerPattern matches the checkbox marker token at the start of a
// trimmed task line. Only this token is rewritten on status changes.
var markerPattern = regexp.MustCompile(`^(\s*-?\s*\[)[ xX~]?(\])`)

// Store is a file-based implementation of TaskFileStore.
type Store struct{}

// New creates a new task file store.
func New() *Store {
	return &Store{}
}

// Read parses the task file at path.
func (s *Store) Read(path string) (*domain.ParsedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoTaskFile
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return domain.Parse(string(data)), nil
}

// SetStatus replaces the checkbox marker on the given line and writes
// the file back, leaving every other line byte-identical. The write
// goes through a temp file and rename so a crash cannot leave a
// half-written task file.
func (s *Store) SetStatus(path string, line int, status domain.Status) (*domain.ParsedDocument, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	doc, err := s.Read(path)
	if err != nil {
		return nil, err
	}
	if line < 0 || line >= len(doc.Lines) {
		return nil, fmt.Errorf("%w: %d", domain.ErrLineOutOfRange, line)
	}

	old := doc.Lines[line]
	updated := markerPattern.ReplaceAllString(old, "${1}"+status.Marker()+"${2}")
	if updated == old && !markerPattern.MatchString(old) {
		return nil, fmt.Errorf("%w: %d", domain.ErrNotATaskLine, line)
	}
	doc.Lines[line] = updated

	if err := writeLines(path, doc.Lines); err != nil {
		return nil, err
	}
	return domain.Parse(strings.Join(doc.Lines, "\n")), nil
}

// Append adds a pending task at the end of the tasks section, creating
// the section if the file has none.
func (s *Store) Append(path, description string) (*domain.ParsedDocument, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.ErrEmptyDescription
	}
	doc, err := s.Read(path)
	if err != nil {
		return nil, err
	}

	entry := "- [ ] " + strings.TrimSpace(description)
	lines := doc.Lines

	if at, ok := tasksInsertIndex(doc); ok {
		lines = append(lines[:at], append([]string{entry}, lines[at:]...)...)
	} else {
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != "" {
			lines = append(lines, "")
		}
		lines = append(lines, "## Tasks", "", entry)
	}

	if err := writeLines(path, lines); err != nil {
		return nil, err
	}
	return domain.Parse(strings.Join(lines, "\n")), nil
}

// Init creates a new task file from the default template.
func (s *Store) Init(path, title, description string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return domain.ErrTaskFileExists
		}
	}
	if title == "" {
		title = filepath.Base(filepath.Dir(abs(path)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if description != "" {
		b.WriteString(description)
		b.WriteString("\n\n")
	}
	b.WriteString("## Goals\n\n")
	b.WriteString("- [ ] Describe the first goal\n\n")
	b.WriteString("## Tasks\n\n")
	b.WriteString("- [ ] Add the first task\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// tasksInsertIndex returns the line index just after the last checkbox
// of the tasks section, or after the last checkbox in the file when no
// tasks section exists but checkboxes do.
func tasksInsertIndex(doc *domain.ParsedDocument) (int, bool) {
	last := -1
	for _, t := range doc.Tasks {
		if t.Section == "tasks" {
			last = t.Line
		}
	}
	if last == -1 {
		for _, t := range doc.Tasks {
			last = t.Line
		}
	}
	if last == -1 {
		return 0, false
	}
	return last + 1, true
}

// writeLines writes the line array joined by newlines via temp file +
// rename in the same directory.
func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tasq-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if info, err := os.Stat(path); err == nil {
		_ = tmp.Chmod(info.Mode())
	}
	if _, err := tmp.WriteString(strings.Join(lines, "\n")); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

func abs(path string) string {
	if p, err := filepath.Abs(path); err == nil {
		return p
	}
	return path
}
