package usecase

import (
	"context"

	"github.com/qretaio/tasq/internal/domain"
)

// ManageRootsInput contains the parameters for editing scan roots.
type ManageRootsInput struct {
	Path string // Root directory (required)
}

// ManageRootsOutput contains the roots after the edit.
type ManageRootsOutput struct {
	Roots []string
}

// ManageRoots is the use case for adding and removing scan roots.
type ManageRoots struct {
	settings domain.SettingsStore
}

// NewManageRoots creates a new ManageRoots use case.
func NewManageRoots(settings domain.SettingsStore) *ManageRoots {
	return &ManageRoots{settings: settings}
}

// Add registers a new scan root.
func (uc *ManageRoots) Add(_ context.Context, in ManageRootsInput) (*ManageRootsOutput, error) {
	if err := uc.settings.AddRoot(in.Path); err != nil {
		return nil, err
	}
	return uc.currentRoots()
}

// Remove unregisters a scan root.
func (uc *ManageRoots) Remove(_ context.Context, in ManageRootsInput) (*ManageRootsOutput, error) {
	if err := uc.settings.RemoveRoot(in.Path); err != nil {
		return nil, err
	}
	return uc.currentRoots()
}

func (uc *ManageRoots) currentRoots() (*ManageRootsOutput, error) {
	loaded, err := uc.settings.Load()
	if err != nil {
		return nil, err
	}
	return &ManageRootsOutput{Roots: loaded.Roots}, nil
}
