package usecase

import (
	"context"
	"path/filepath"

	"github.com/qretaio/tasq/internal/domain"
)

// InitFileInput contains the parameters for creating a task file.
type InitFileInput struct {
	Dir         string // Project directory
	Title       string // Document title (optional, empty = directory name)
	Description string // Document description (optional)
	Force       bool   // Overwrite an existing task file
}

// InitFileOutput contains the result of creating a task file.
type InitFileOutput struct {
	Path string // Path to the created task file
}

// InitFile is the use case for bootstrapping a task file in a project.
type InitFile struct {
	store domain.TaskFileStore
}

// NewInitFile creates a new InitFile use case.
func NewInitFile(store domain.TaskFileStore) *InitFile {
	return &InitFile{store: store}
}

// Execute creates the task file.
func (uc *InitFile) Execute(_ context.Context, in InitFileInput) (*InitFileOutput, error) {
	title := in.Title
	if title == "" {
		title = filepath.Base(in.Dir)
	}
	path := domain.TaskFilePath(in.Dir)
	if err := uc.store.Init(path, title, in.Description, in.Force); err != nil {
		return nil, err
	}
	return &InitFileOutput{Path: path}, nil
}
