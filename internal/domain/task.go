// Package domain contains core business entities and interfaces.
package domain

// Status represents the state of a checkbox task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	for _, valid := range AllStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Marker returns the checkbox marker character for the status.
func (s Status) Marker() string {
	switch s {
	case StatusCompleted:
		return "x"
	case StatusInProgress:
		return "~"
	default:
		return " "
	}
}

// Icon returns the full checkbox token for the status, e.g. "[x]".
func (s Status) Icon() string {
	return "[" + s.Marker() + "]"
}

// StatusForMarker maps a checkbox marker character to a status.
// "x" and "X" are completed, "~" is in-progress, anything else is pending.
func StatusForMarker(marker string) Status {
	switch marker {
	case "x", "X":
		return StatusCompleted
	case "~":
		return StatusInProgress
	default:
		return StatusPending
	}
}

// Task represents one checkbox line in a task file.
// Fields are ordered to minimize memory padding.
type Task struct {
	Description string // Text after the checkbox marker, trimmed
	Section     string // Lowercased heading the line falls under ("" = before any section)
	Goal        string // Reserved grouping tag, unused by current grouping
	ID          string // Compact cross-project ID, assigned only during multi-project scans
	Line        int    // 0-based index into the source file's line array
	Status      Status // Current checkbox state
}

// ParsedDocument is the result of parsing one task file.
// Lines holds the verbatim source so edits can be applied without
// reformatting untouched content.
type ParsedDocument struct {
	Title       string   // First level-1 heading, or frontmatter title
	Description string   // Free text under the title, before any section
	Notes       string   // Free text inside the tasks section before its first checkbox
	Tasks       []Task   // Every recognized checkbox, in file order
	Lines       []string // Verbatim source lines
}

// Goals returns the tasks that fall under a "goals" section.
// It is a filtered view over Tasks, computed on demand; the entries
// have no lifetime independent of Tasks.
func (d *ParsedDocument) Goals() []Task {
	var goals []Task
	for _, t := range d.Tasks {
		if t.Section == "goals" {
			goals = append(goals, t)
		}
	}
	return goals
}

// Open returns the descriptions of tasks that are not completed.
func (d *ParsedDocument) Open() []string {
	var open []string
	for _, t := range d.Tasks {
		if t.Status != StatusCompleted {
			open = append(open, t.Description)
		}
	}
	return open
}

// ProjectResult is one scanned project.
// Tasks are independent copies of the document's tasks annotated with
// compact IDs; mutating them does not write back to Doc.
type ProjectResult struct {
	Name   string          // Project directory name
	Dir    string          // Absolute project directory
	Path   string          // Absolute path to the task file
	RepoID string          // Short ID assigned by the allocator
	Doc    *ParsedDocument // Parsed task file
	Tasks  []Task          // Annotated task copies, in file order
}

// AnnotateTasks copies the document's tasks and assigns compact IDs
// of the form {repoID}{1-based position}.
func (p *ProjectResult) AnnotateTasks(repoID string) {
	p.RepoID = repoID
	p.Tasks = make([]Task, len(p.Doc.Tasks))
	for i, t := range p.Doc.Tasks {
		t.ID = FormatTaskID(repoID, i+1)
		p.Tasks[i] = t
	}
}
