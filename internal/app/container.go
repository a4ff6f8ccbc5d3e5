// Package app provides the dependency injection container for the
// application.
package app

import (
	"log/slog"
	"os"

	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/infra/assistant"
	"github.com/qretaio/tasq/internal/infra/gather"
	"github.com/qretaio/tasq/internal/infra/gitinfo"
	"github.com/qretaio/tasq/internal/infra/scanner"
	"github.com/qretaio/tasq/internal/infra/settings"
	"github.com/qretaio/tasq/internal/infra/taskfile"
	"github.com/qretaio/tasq/internal/usecase"
)

// Container holds all port implementations and provides factory
// methods for use cases.
type Container struct {
	Settings  domain.SettingsStore
	Scanner   domain.ProjectScanner
	TaskFiles domain.TaskFileStore
	Gatherer  domain.ContextGatherer
	Git       domain.GitSummarizer
	Runner    domain.AssistantRunner
	Clock     domain.Clock

	Logger   *slog.Logger
	StateDir string
}

// New creates a Container wired to the real filesystem and settings.
func New() (*Container, error) {
	settingsStore := settings.NewStore()
	loaded, err := settingsStore.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(loaded.Log.Level),
	}))

	git := gitinfo.NewClient()
	return &Container{
		Settings:  settingsStore,
		Scanner:   scanner.New(logger),
		TaskFiles: taskfile.New(),
		Gatherer:  gather.New(git, logger),
		Git:       git,
		Runner:    assistant.NewRunner(assistant.NewRegistry(loaded.Assistants)),
		Clock:     domain.RealClock{},
		Logger:    logger,
		StateDir:  settings.DefaultStateDir(),
	}, nil
}

// logLevel maps the settings value to a slog level.
func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ScanProjectsUseCase creates the ScanProjects use case.
func (c *Container) ScanProjectsUseCase() *usecase.ScanProjects {
	return usecase.NewScanProjects(c.Settings, c.Scanner)
}

// ListTasksUseCase creates the ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.ScanProjectsUseCase(), c.TaskFiles)
}

// InitFileUseCase creates the InitFile use case.
func (c *Container) InitFileUseCase() *usecase.InitFile {
	return usecase.NewInitFile(c.TaskFiles)
}

// AddTaskUseCase creates the AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.TaskFiles)
}

// SetStatusUseCase creates the SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.ScanProjectsUseCase(), c.TaskFiles)
}

// DoTaskUseCase creates the DoTask use case.
func (c *Container) DoTaskUseCase() *usecase.DoTask {
	return usecase.NewDoTask(
		c.ScanProjectsUseCase(),
		c.TaskFiles,
		c.Gatherer,
		c.Runner,
		c.Clock,
		c.Logger,
		c.StateDir,
	)
}

// ShowProjectUseCase creates the ShowProject use case.
func (c *Container) ShowProjectUseCase() *usecase.ShowProject {
	return usecase.NewShowProject(c.ScanProjectsUseCase())
}

// ShowSettingsUseCase creates the ShowSettings use case.
func (c *Container) ShowSettingsUseCase() *usecase.ShowSettings {
	return usecase.NewShowSettings(c.Settings)
}

// ManageRootsUseCase creates the ManageRoots use case.
func (c *Container) ManageRootsUseCase() *usecase.ManageRoots {
	return usecase.NewManageRoots(c.Settings)
}
