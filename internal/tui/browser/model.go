// Package browser is the interactive task browser launched by
// "tasq tui". It shows every scanned project's tasks and lets the
// cursor flip checkbox states in place.
package browser

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/usecase"
)

// row is one selectable line: a task within its project.
type row struct {
	project *domain.ProjectResult
	task    domain.Task
}

// Model is the task browser TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	scan      *usecase.ScanProjects
	setStatus *usecase.SetStatus

	projects []domain.ProjectResult
	rows     []row
	err      error

	keys   KeyMap
	styles Styles
	help   help.Model

	cursor  int
	width   int
	height  int
	loading bool
	showAll bool
}

// New creates a new browser model.
func New(scan *usecase.ScanProjects, setStatus *usecase.SetStatus) *Model {
	return &Model{
		scan:      scan,
		setStatus: setStatus,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		loading:   true,
	}
}

// Init starts the initial scan.
func (m *Model) Init() tea.Cmd {
	return m.loadProjects()
}

// loadProjects scans all roots off the UI loop.
func (m *Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		out, err := m.scan.Execute(context.Background(), usecase.ScanProjectsInput{})
		if err != nil {
			return MsgProjectsLoaded{Err: err}
		}
		return MsgProjectsLoaded{Projects: out.Projects}
	}
}

// setTaskStatus flips one task's checkbox off the UI loop.
func (m *Model) setTaskStatus(task domain.Task, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		_, err := m.setStatus.Execute(context.Background(), usecase.SetStatusInput{
			Identifier: task.ID,
			Status:     status,
		})
		return MsgStatusSet{Err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgProjectsLoaded:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.projects = msg.Projects
			m.rebuildRows()
		}
		return m, nil

	case MsgStatusSet:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		return m, m.loadProjects()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadProjects()
	case key.Matches(msg, m.keys.All):
		m.showAll = !m.showAll
		m.rebuildRows()
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.currentRow(); ok {
			next := domain.StatusCompleted
			if r.task.Status == domain.StatusCompleted {
				next = domain.StatusPending
			}
			return m, m.setTaskStatus(r.task, next)
		}
	case key.Matches(msg, m.keys.Start):
		if r, ok := m.currentRow(); ok && r.task.Status != domain.StatusInProgress {
			return m, m.setTaskStatus(r.task, domain.StatusInProgress)
		}
	}
	return m, nil
}

func (m *Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// rebuildRows flattens the scanned projects into selectable lines,
// honoring the completed-task filter and keeping the cursor in range.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	for i := range m.projects {
		p := &m.projects[i]
		for _, t := range p.Tasks {
			if !m.showAll && t.Status == domain.StatusCompleted {
				continue
			}
			m.rows = append(m.rows, row{project: p, task: t})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("tasq"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Scanning projects...\n")
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	case len(m.rows) == 0:
		b.WriteString("No tasks found.\n")
	default:
		m.renderRows(&b)
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderRows(b *strings.Builder) {
	var lastProject *domain.ProjectResult
	for i, r := range m.rows {
		if r.project != lastProject {
			if lastProject != nil {
				b.WriteString("\n")
			}
			lastProject = r.project
			header := r.project.Name
			if r.project.RepoID != "" {
				header += " [" + r.project.RepoID + "]"
			}
			b.WriteString(m.styles.Project.Render(header))
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(r, i == m.cursor))
		b.WriteString("\n")
	}
}

func (m *Model) renderRow(r row, selected bool) string {
	line := r.task.Status.Icon() + " "
	if r.task.ID != "" {
		line += m.styles.ID.Render(r.task.ID) + " "
	}
	desc := r.task.Description
	switch {
	case selected:
		return "  " + m.styles.Selected.Render(line+desc)
	case r.task.Status == domain.StatusCompleted:
		return "  " + line + m.styles.Done.Render(desc)
	case r.task.Status == domain.StatusInProgress:
		return "  " + line + m.styles.InProgress.Render(desc)
	default:
		return "  " + line + m.styles.Normal.Render(desc)
	}
}
