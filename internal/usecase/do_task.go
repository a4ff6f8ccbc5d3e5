package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qretaio/tasq/internal/domain"
)

// DoTaskInput contains the parameters for delegating a task.
// Fields are ordered to minimize memory padding.
type DoTaskInput struct {
	Identifier string // Compact ID or description substring (required)
	Dir        string // Current directory, used to bias substring matches
	Assistant  string // Assistant name (optional, empty = default)
	AutoAccept bool   // Pass the assistant's non-interactive flag
	PrintOnly  bool   // Build the prompt without spawning the assistant
}

// DoTaskOutput contains the result of delegating a task.
// Fields are ordered to minimize memory padding.
type DoTaskOutput struct {
	Prompt         string      // The full prompt handed to the assistant
	TranscriptPath string      // Where the prompt was persisted ("" if not)
	ProjectName    string      // Project owning the task
	Warning        string      // Non-fatal assistant failure, if any
	Task           domain.Task // The resolved task
}

// DoTask is the use case for handing a task to an external coding
// assistant: resolve the task, mark it in progress, assemble a prompt
// from the task file plus gathered context, and spawn the assistant in
// the project directory. An assistant that exits non-zero is reported
// as a warning, not an error; the work may still have happened.
type DoTask struct {
	scan     *ScanProjects
	store    domain.TaskFileStore
	gatherer domain.ContextGatherer
	runner   domain.AssistantRunner
	clock    domain.Clock
	logger   *slog.Logger
	stateDir string
}

// NewDoTask creates a new DoTask use case. stateDir may be empty to
// skip prompt transcripts.
func NewDoTask(
	scan *ScanProjects,
	store domain.TaskFileStore,
	gatherer domain.ContextGatherer,
	runner domain.AssistantRunner,
	clock domain.Clock,
	logger *slog.Logger,
	stateDir string,
) *DoTask {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DoTask{
		scan:     scan,
		store:    store,
		gatherer: gatherer,
		runner:   runner,
		clock:    clock,
		logger:   logger,
		stateDir: stateDir,
	}
}

// Execute resolves, prepares and delegates the task.
func (uc *DoTask) Execute(ctx context.Context, in DoTaskInput) (*DoTaskOutput, error) {
	scanned, err := uc.scan.Execute(ctx, ScanProjectsInput{})
	if err != nil {
		return nil, err
	}
	located, err := locateTask(in.Identifier, in.Dir, scanned.Projects)
	if err != nil {
		return nil, err
	}
	project := located.Project

	raw := strings.Join(project.Doc.Lines, "\n")
	directive := domain.ParseContext(raw)

	contextText, err := uc.gatherer.Gather(ctx, project.Dir, directive)
	if err != nil {
		uc.logger.Debug("context gathering failed", "project", project.Name, "error", err)
		contextText = ""
	}

	prompt := domain.BuildPrompt(domain.PromptInput{
		Project: project,
		Task:    located.Task,
		Related: relatedSummaries(project, directive, scanned.Projects),
		Context: contextText,
	})

	transcript := uc.writeTranscript(located.Task, project, prompt)

	out := &DoTaskOutput{
		Prompt:         prompt,
		TranscriptPath: transcript,
		ProjectName:    project.Name,
		Task:           located.Task,
	}
	if in.PrintOnly {
		return out, nil
	}

	cmd, err := uc.runner.Resolve(in.Assistant, prompt, project.Dir, in.AutoAccept)
	if err != nil {
		return nil, err
	}

	if located.Task.Status == domain.StatusPending {
		if _, err := uc.store.SetStatus(project.Path, located.Task.Line, domain.StatusInProgress); err != nil {
			return nil, fmt.Errorf("mark task in progress: %w", err)
		}
		out.Task.Status = domain.StatusInProgress
	}

	uc.logger.Info("delegating task",
		"task", located.Task.ID,
		"project", project.Name,
		"assistant", cmd.Program,
	)
	if err := uc.runner.Run(ctx, cmd); err != nil {
		out.Warning = fmt.Sprintf("assistant %s failed: %v", cmd.Program, err)
	}
	return out, nil
}

// locateTask resolves the identifier, biasing substring matches toward
// the project at dir when the caller runs inside one. Compact IDs stay
// global: they already name their project.
func locateTask(identifier, dir string, projects []domain.ProjectResult) (*domain.Located, error) {
	if _, _, ok := domain.ParseTaskID(identifier); !ok && dir != "" {
		for i := range projects {
			if projects[i].Dir != dir {
				continue
			}
			if located, err := domain.Locate(identifier, projects[i:i+1]); err == nil {
				return located, nil
			}
			break
		}
	}
	return domain.Locate(identifier, projects)
}

// relatedSummaries resolves the directive's repo hints against the
// scanned projects. Entries match by project name or path basename;
// the current project and unknown entries are skipped.
func relatedSummaries(current *domain.ProjectResult, directive domain.ContextDirective, projects []domain.ProjectResult) []domain.RelatedSummary {
	var related []domain.RelatedSummary
	for _, hint := range directive.Repos {
		name := filepath.Base(hint)
		for i := range projects {
			p := &projects[i]
			if p.Name != name || p.Name == current.Name {
				continue
			}
			related = append(related, domain.RelatedSummary{
				Name:      p.Name,
				Goals:     p.Doc.Goals(),
				OpenTasks: p.Doc.Open(),
			})
			break
		}
	}
	return related
}

// writeTranscript persists the prompt for later inspection, headed by
// the delegation time. Failures are logged and ignored; transcripts
// are a convenience.
func (uc *DoTask) writeTranscript(task domain.Task, project *domain.ProjectResult, prompt string) string {
	if uc.stateDir == "" {
		return ""
	}
	name := task.ID
	if name == "" {
		name = fmt.Sprintf("%s-%d", project.Name, task.Line+1)
	}
	dir := filepath.Join(uc.stateDir, "prompts")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		uc.logger.Debug("cannot create transcript directory", "dir", dir, "error", err)
		return ""
	}
	path := filepath.Join(dir, name+".txt")
	content := fmt.Sprintf("Delegated at %s\n\n%s", uc.clock.Now().Format(time.RFC3339), prompt)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		uc.logger.Debug("cannot write transcript", "path", path, "error", err)
		return ""
	}
	return path
}
