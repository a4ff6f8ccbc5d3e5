package usecase

import (
	"context"

	"github.com/qretaio/tasq/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Dir         string // Project directory
	Description string // Task description (required)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task     domain.Task // The appended task
	Position int         // 1-based position in the file's task list
}

// AddTask is the use case for appending a pending task to the current
// project's task file.
type AddTask struct {
	store domain.TaskFileStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskFileStore) *AddTask {
	return &AddTask{store: store}
}

// Execute appends the task.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	doc, err := uc.store.Append(domain.TaskFilePath(in.Dir), in.Description)
	if err != nil {
		return nil, err
	}
	last := doc.Tasks[len(doc.Tasks)-1]
	return &AddTaskOutput{Task: last, Position: len(doc.Tasks)}, nil
}
