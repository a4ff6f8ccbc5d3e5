// Package watcher notifies on task file changes for the list --watch
// mode.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces rapid successive write events (editors often
// truncate + write + rename).
const debounce = 200 * time.Millisecond

// Watcher emits a signal whenever one of the watched files changes.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Changes chan struct{}
}

// New creates a watcher over the given file paths. Directories are
// watched rather than files so rename-based saves keep working.
func New(paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return &Watcher{fsw: fsw, Changes: make(chan struct{}, 1)}, nil
}

// Watch pumps debounced change signals until the context is done.
func (w *Watcher) Watch(ctx context.Context) {
	var timer *time.Timer
	fire := func() {
		select {
		case w.Changes <- struct{}{}:
		default:
		}
	}
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, fire)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
