// Package scanner locates and parses task files across configured
// project roots.
package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/qretaio/tasq/internal/domain"
	"github.com/qretaio/tasq/internal/infra/settings"
)

// Ensure Scanner implements domain.ProjectScanner.
var _ domain.ProjectScanner = (*Scanner)(nil)

// maxDepth bounds the search to this many directory levels below each
// root.
const maxDepth = 3

// maxConcurrentReads bounds the parse fan-out so a huge root does not
// open one file descriptor per project at once.
const maxConcurrentReads = 8

// skipDirs are well-known build and dependency directories never
// descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	".venv":        true,
	"__pycache__":  true,
}

// Scanner walks roots looking for task files.
type Scanner struct {
	logger *slog.Logger
}

// New creates a new Scanner.
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{logger: logger}
}

// Scan walks the given roots (with "~" expansion) and returns one
// ProjectResult per readable task file, tasks annotated with compact
// IDs. Files are read and parsed concurrently, at most
// maxConcurrentReads at a time, but results keep scan order so repo-ID
// allocation stays deterministic. Unreadable files are logged and
// skipped; they never abort the scan.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]domain.ProjectResult, error) {
	var paths []string
	for _, root := range roots {
		expanded := settings.ExpandHome(root)
		found, err := findTaskFiles(expanded)
		if err != nil {
			s.logger.Debug("skipping scan root", "root", expanded, "error", err)
			continue
		}
		paths = append(paths, found...)
	}

	results := make([]*domain.ProjectResult, len(paths))
	sem := make(chan struct{}, maxConcurrentReads)
	var wg sync.WaitGroup
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			data, err := os.ReadFile(path)
			if err != nil {
				s.logger.Debug("skipping unreadable task file", "path", path, "error", err)
				return
			}
			dir := filepath.Dir(path)
			results[i] = &domain.ProjectResult{
				Name: filepath.Base(dir),
				Dir:  dir,
				Path: path,
				Doc:  domain.Parse(string(data)),
			}
		}(i, path)
	}
	wg.Wait()

	// The allocator requires unique names; a later project with a name
	// already seen is dropped rather than aborting the scan.
	var projects []domain.ProjectResult
	var names []string
	seen := make(map[string]bool)
	for _, r := range results {
		if r == nil {
			continue
		}
		if seen[r.Name] {
			s.logger.Debug("skipping duplicate project name", "name", r.Name, "path", r.Path)
			continue
		}
		seen[r.Name] = true
		projects = append(projects, *r)
		names = append(names, r.Name)
	}

	ids, err := domain.AllocateRepoIDs(names)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].AnnotateTasks(ids[projects[i].Name])
	}
	return projects, nil
}

// findTaskFiles collects task file paths under root, depth-bounded and
// sorted for a stable scan order.
func findTaskFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fs.ErrInvalid
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it, keep scanning.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			if depthBelow(root, path) > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == domain.TaskFileName {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}

// depthBelow returns how many levels path sits below root.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
