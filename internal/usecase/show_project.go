package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/qretaio/tasq/internal/domain"
)

// ShowProjectInput contains the parameters for showing a project.
type ShowProjectInput struct {
	Name string // Project name or compact repo ID (required)
}

// ShowProjectOutput contains the result of showing a project.
type ShowProjectOutput struct {
	Project *domain.ProjectResult
}

// ShowProject is the use case for displaying one scanned project's
// task file in detail.
type ShowProject struct {
	scan *ScanProjects
}

// NewShowProject creates a new ShowProject use case.
func NewShowProject(scan *ScanProjects) *ShowProject {
	return &ShowProject{scan: scan}
}

// Execute finds the project by exact name, repo ID, or name substring.
func (uc *ShowProject) Execute(ctx context.Context, in ShowProjectInput) (*ShowProjectOutput, error) {
	out, err := uc.scan.Execute(ctx, ScanProjectsInput{})
	if err != nil {
		return nil, err
	}

	for i := range out.Projects {
		p := &out.Projects[i]
		if strings.EqualFold(p.Name, in.Name) || p.RepoID == in.Name {
			return &ShowProjectOutput{Project: p}, nil
		}
	}
	needle := strings.ToLower(in.Name)
	for i := range out.Projects {
		p := &out.Projects[i]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return &ShowProjectOutput{Project: p}, nil
		}
	}
	return nil, fmt.Errorf("%w: no project matching %q", domain.ErrTaskNotFound, in.Name)
}
