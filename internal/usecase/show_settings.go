package usecase

import (
	"context"
	"fmt"

	"github.com/qretaio/tasq/internal/domain"
)

// ShowSettingsOutput contains the loaded settings and their location.
type ShowSettingsOutput struct {
	Settings *domain.Settings
	Path     string // Settings file path
}

// settingsPather is implemented by stores that know their file path.
type settingsPather interface {
	Path() string
}

// ShowSettings is the use case for displaying the active configuration.
type ShowSettings struct {
	settings domain.SettingsStore
}

// NewShowSettings creates a new ShowSettings use case.
func NewShowSettings(settings domain.SettingsStore) *ShowSettings {
	return &ShowSettings{settings: settings}
}

// Execute loads and returns the settings.
func (uc *ShowSettings) Execute(_ context.Context) (*ShowSettingsOutput, error) {
	loaded, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	out := &ShowSettingsOutput{Settings: loaded}
	if p, ok := uc.settings.(settingsPather); ok {
		out.Path = p.Path()
	}
	return out, nil
}
