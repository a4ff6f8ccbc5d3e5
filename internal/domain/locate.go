package domain

import "strings"

// Located identifies one task inside one scanned project.
type Located struct {
	Project *ProjectResult
	Task    Task
	Index   int // 0-based position in the project's task list
}

// Locate resolves a user-supplied identifier to a task. Compact IDs
// ("p2") are tried first; otherwise the identifier is matched as a
// case-insensitive substring of task descriptions, first match in scan
// order winning. Returns ErrTaskNotFound when nothing matches.
func Locate(identifier string, projects []ProjectResult) (*Located, error) {
	if repoID, position, ok := ParseTaskID(identifier); ok {
		for i := range projects {
			p := &projects[i]
			if p.RepoID != repoID {
				continue
			}
			if position >= 1 && position <= len(p.Tasks) {
				return &Located{Project: p, Task: p.Tasks[position-1], Index: position - 1}, nil
			}
		}
	}

	needle := strings.ToLower(identifier)
	for i := range projects {
		p := &projects[i]
		for j, t := range p.Tasks {
			if strings.Contains(strings.ToLower(t.Description), needle) {
				return &Located{Project: p, Task: t, Index: j}, nil
			}
		}
	}
	return nil, ErrTaskNotFound
}
