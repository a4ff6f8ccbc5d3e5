package usecase

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/qretaio/tasq/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	Dir         string // Project directory for the local listing
	Global      bool   // List across all configured roots instead of Dir
	PendingOnly bool   // Show only pending tasks
	All         bool   // Include completed tasks (default hides them)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Projects []domain.ProjectResult // One entry for local listings, many for global
}

// ListTasks is the use case for listing tasks, either from the current
// project's task file or across every scanned project.
type ListTasks struct {
	scan  *ScanProjects
	store domain.TaskFileStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(scan *ScanProjects, store domain.TaskFileStore) *ListTasks {
	return &ListTasks{scan: scan, store: store}
}

// Execute lists tasks matching the given input.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var projects []domain.ProjectResult

	if in.Global {
		out, err := uc.scan.Execute(ctx, ScanProjectsInput{})
		if err != nil {
			return nil, err
		}
		projects = out.Projects
	} else {
		path := domain.TaskFilePath(in.Dir)
		doc, err := uc.store.Read(path)
		if err != nil {
			return nil, err
		}
		project := domain.ProjectResult{
			Name: filepath.Base(in.Dir),
			Dir:  in.Dir,
			Path: path,
			Doc:  doc,
		}
		// Local listings address tasks by 1-based file position, so the
		// position is assigned before any filtering.
		project.Tasks = make([]domain.Task, len(doc.Tasks))
		for i, task := range doc.Tasks {
			task.ID = strconv.Itoa(i + 1)
			project.Tasks[i] = task
		}
		projects = []domain.ProjectResult{project}
	}

	for i := range projects {
		projects[i].Tasks = filterTasks(projects[i].Tasks, in)
	}
	return &ListTasksOutput{Projects: projects}, nil
}

// filterTasks applies the listing's status filters.
func filterTasks(tasks []domain.Task, in ListTasksInput) []domain.Task {
	if in.All && !in.PendingOnly {
		return tasks
	}
	kept := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch {
		case in.PendingOnly && t.Status != domain.StatusPending:
		case !in.All && t.Status == domain.StatusCompleted:
		default:
			kept = append(kept, t)
		}
	}
	return kept
}
