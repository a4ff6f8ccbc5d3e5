package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// TaskFileName is the designated task file looked up in each project.
const TaskFileName = "TASKS.md"

// TaskFilePath returns the task file path for a project directory.
func TaskFilePath(dir string) string {
	return filepath.Join(dir, TaskFileName)
}

// compactIDPattern matches compact task identifiers: a repo-ID prefix
// of lowercase letters followed by a 1-based task number.
var compactIDPattern = regexp.MustCompile(`^([a-z]+)([0-9]+)$`)

// FormatTaskID returns the compact identifier for a task, e.g. "p2".
func FormatTaskID(repoID string, position int) string {
	return fmt.Sprintf("%s%d", repoID, position)
}

// ParseTaskID splits a compact identifier into its repo-ID prefix and
// 1-based task number. Returns ok=false if the identifier does not have
// the compact shape.
func ParseTaskID(id string) (repoID string, position int, ok bool) {
	m := compactIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}
