// Package gather collects free-form project context for prompt
// building: dependency manifests, TODO comments, directive-matched
// files, and a git summary.
package gather

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/qretaio/tasq/internal/domain"
)

// Ensure Gatherer implements domain.ContextGatherer.
var _ domain.ContextGatherer = (*Gatherer)(nil)

// manifestNames are dependency files summarized when present.
var manifestNames = []string{
	"go.mod",
	"package.json",
	"Cargo.toml",
	"pyproject.toml",
	"Gemfile",
}

// sourceExtensions are scanned for TODO comments.
var sourceExtensions = map[string]bool{
	".go": true, ".ts": true, ".tsx": true, ".js": true,
	".py": true, ".rs": true, ".rb": true, ".java": true,
}

const (
	maxTodoLines     = 20
	maxDirectiveRefs = 30
	maxManifestBytes = 4 * 1024
	todoScanDepth    = 3
)

// Gatherer builds context text from local heuristics.
type Gatherer struct {
	git    domain.GitSummarizer
	logger *slog.Logger
}

// New creates a Gatherer. git may be nil to omit version-control
// summaries.
func New(git domain.GitSummarizer, logger *slog.Logger) *Gatherer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gatherer{git: git, logger: logger}
}

// Gather assembles context for the project directory. Every part is
// best effort; missing files never produce an error.
func (g *Gatherer) Gather(ctx context.Context, dir string, directive domain.ContextDirective) (string, error) {
	var sections []string

	if g.git != nil {
		if summary, ok := g.git.Summary(dir); ok && summary != "" {
			sections = append(sections, "### Git\n\n"+summary)
		}
	}

	if manifests := g.readManifests(dir); manifests != "" {
		sections = append(sections, "### Dependencies\n\n"+manifests)
	}

	if len(directive.Files) > 0 {
		if matched := g.matchDirectiveFiles(dir, directive.Files); len(matched) > 0 {
			sections = append(sections, "### Relevant files\n\n"+strings.Join(matched, "\n"))
		}
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if todos := g.collectTodos(ctx, dir); len(todos) > 0 {
		sections = append(sections, "### TODO comments\n\n"+strings.Join(todos, "\n"))
	}

	return strings.Join(sections, "\n\n"), nil
}

// readManifests returns the head of each known dependency manifest.
func (g *Gatherer) readManifests(dir string) string {
	var parts []string
	for _, name := range manifestNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if len(data) > maxManifestBytes {
			data = data[:maxManifestBytes]
		}
		parts = append(parts, fmt.Sprintf("%s:\n```\n%s\n```", name, strings.TrimSpace(string(data))))
	}
	return strings.Join(parts, "\n\n")
}

// matchDirectiveFiles expands the directive's globs against the
// project tree and returns matching relative paths.
func (g *Gatherer) matchDirectiveFiles(dir string, globs []string) []string {
	var matched []string
	fsys := os.DirFS(dir)
	for _, glob := range globs {
		paths, err := doublestar.Glob(fsys, glob)
		if err != nil {
			g.logger.Debug("bad context glob", "glob", glob, "error", err)
			continue
		}
		for _, p := range paths {
			matched = append(matched, p)
			if len(matched) >= maxDirectiveRefs {
				return matched
			}
		}
	}
	return matched
}

// collectTodos greps source files for TODO/FIXME comments, bounded in
// depth and count.
func (g *Gatherer) collectTodos(ctx context.Context, dir string) []string {
	var todos []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || ctx.Err() != nil || len(todos) >= maxTodoLines {
			return fs.SkipAll
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (name == ".git" || name == "node_modules" || name == "vendor") {
				return fs.SkipDir
			}
			if depthBelow(dir, path) > todoScanDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(path)] {
			return nil
		}
		todos = append(todos, fileTodos(path, dir, maxTodoLines-len(todos))...)
		return nil
	})
	return todos
}

// fileTodos scans one file for TODO/FIXME lines.
func fileTodos(path, dir string, limit int) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = path
	}

	var todos []string
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(todos) < limit {
		lineNo++
		line := sc.Text()
		if strings.Contains(line, "TODO") || strings.Contains(line, "FIXME") {
			todos = append(todos, fmt.Sprintf("%s:%d: %s", rel, lineNo, strings.TrimSpace(line)))
		}
	}
	return todos
}

// depthBelow returns how many levels path sits below root.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
