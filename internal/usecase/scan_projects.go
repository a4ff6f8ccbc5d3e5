// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/qretaio/tasq/internal/domain"
)

// ScanProjectsInput contains the parameters for scanning projects.
type ScanProjectsInput struct {
	Roots []string // Explicit roots (optional, empty = configured roots)
}

// ScanProjectsOutput contains the result of scanning projects.
type ScanProjectsOutput struct {
	Projects []domain.ProjectResult // Scanned projects in stable scan order
	Roots    []string               // The roots that were scanned
}

// ScanProjects is the use case for discovering task files across all
// configured roots.
type ScanProjects struct {
	settings domain.SettingsStore
	scanner  domain.ProjectScanner
}

// NewScanProjects creates a new ScanProjects use case.
func NewScanProjects(settings domain.SettingsStore, scanner domain.ProjectScanner) *ScanProjects {
	return &ScanProjects{settings: settings, scanner: scanner}
}

// Execute scans the roots and returns annotated projects.
func (uc *ScanProjects) Execute(ctx context.Context, in ScanProjectsInput) (*ScanProjectsOutput, error) {
	roots := in.Roots
	if len(roots) == 0 {
		loaded, err := uc.settings.Load()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		roots = loaded.Roots
	}

	projects, err := uc.scanner.Scan(ctx, roots)
	if err != nil {
		return nil, fmt.Errorf("scan roots: %w", err)
	}
	return &ScanProjectsOutput{Projects: projects, Roots: roots}, nil
}
