package domain

import (
	"fmt"
	"strings"
)

// AllocateRepoIDs assigns each project name a shortest-unique lowercase
// prefix used as its cross-project task-ID namespace. Allocation is
// deterministic and order-dependent: names are processed in the given
// order, and the name processed first keeps the shortest prefix.
//
// A name that is exhausted before a unique prefix is found (its full
// case-folded form is already issued) returns ErrAmbiguousProject.
func AllocateRepoIDs(names []string) (map[string]string, error) {
	issued := make(map[string]bool, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		folded := strings.ToLower(name)
		length := 1
		for {
			if length > len(folded) {
				return nil, fmt.Errorf("%w: %q", ErrAmbiguousProject, name)
			}
			candidate := folded[:length]
			if !issued[candidate] {
				issued[candidate] = true
				ids[name] = candidate
				break
			}
			length++
		}
	}
	return ids, nil
}
