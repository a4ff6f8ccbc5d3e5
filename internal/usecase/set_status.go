package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qretaio/tasq/internal/domain"
)

// SetStatusInput contains the parameters for changing a task's status.
// Fields are ordered to minimize memory padding.
type SetStatusInput struct {
	Identifier string        // Compact ID, local position, or description substring
	Dir        string        // Current project directory for positional lookups
	Status     domain.Status // Target status
}

// SetStatusOutput contains the result of changing a task's status.
type SetStatusOutput struct {
	ProjectName string      // Project owning the task
	Path        string      // Task file that was rewritten
	Task        domain.Task // The task after the update
}

// SetStatus is the use case for flipping one checkbox marker. A purely
// numeric identifier addresses the current directory's task file by
// 1-based position; anything else resolves across all scanned projects,
// compact ID first, then description substring.
type SetStatus struct {
	scan  *ScanProjects
	store domain.TaskFileStore
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(scan *ScanProjects, store domain.TaskFileStore) *SetStatus {
	return &SetStatus{scan: scan, store: store}
}

// Execute resolves the identifier and rewrites its checkbox marker.
func (uc *SetStatus) Execute(ctx context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	if position, err := strconv.Atoi(in.Identifier); err == nil {
		return uc.setLocal(in.Dir, position, in.Status)
	}

	out, err := uc.scan.Execute(ctx, ScanProjectsInput{})
	if err != nil {
		return nil, err
	}
	located, err := domain.Locate(in.Identifier, out.Projects)
	if err != nil {
		return nil, err
	}

	doc, err := uc.store.SetStatus(located.Project.Path, located.Task.Line, in.Status)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", located.Project.Path, err)
	}
	task := doc.Tasks[located.Index]
	task.ID = located.Task.ID
	return &SetStatusOutput{
		ProjectName: located.Project.Name,
		Path:        located.Project.Path,
		Task:        task,
	}, nil
}

// setLocal updates the current directory's task file by position.
func (uc *SetStatus) setLocal(dir string, position int, status domain.Status) (*SetStatusOutput, error) {
	path := domain.TaskFilePath(dir)
	doc, err := uc.store.Read(path)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(doc.Tasks) {
		return nil, fmt.Errorf("%w: no task %d in %s", domain.ErrTaskNotFound, position, path)
	}

	updated, err := uc.store.SetStatus(path, doc.Tasks[position-1].Line, status)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", path, err)
	}
	return &SetStatusOutput{
		ProjectName: doc.Title,
		Path:        path,
		Task:        updated.Tasks[position-1],
	}, nil
}
