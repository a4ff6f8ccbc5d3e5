// Package gitinfo summarizes version-control state for a project
// directory using go-git.
package gitinfo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/qretaio/tasq/internal/domain"
)

// Ensure Client implements domain.GitSummarizer.
var _ domain.GitSummarizer = (*Client)(nil)

// commitLimit is how many recent commit subjects appear in a summary.
const commitLimit = 5

// Client reads repository state without shelling out to git.
type Client struct{}

// NewClient creates a new git summarizer.
func NewClient() *Client {
	return &Client{}
}

// Summary returns a short branch/status/log digest for dir, or
// ok=false when dir is not inside a git repository. Partial
// information is fine: a repo with no commits yet still reports its
// branch.
func (c *Client) Summary(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}

	var b strings.Builder
	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			fmt.Fprintf(&b, "branch: %s\n", head.Name().Short())
		} else {
			fmt.Fprintf(&b, "HEAD: %s\n", head.Hash().String()[:8])
		}
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			if status.IsClean() {
				b.WriteString("worktree: clean\n")
			} else {
				fmt.Fprintf(&b, "worktree: %d changed file(s)\n", len(status))
			}
		}
	}

	if iter, err := repo.Log(&git.LogOptions{}); err == nil {
		b.WriteString("recent commits:\n")
		count := 0
		for count < commitLimit {
			commit, err := iter.Next()
			if err != nil {
				break
			}
			subject := commit.Message
			if i := strings.IndexByte(subject, '\n'); i >= 0 {
				subject = subject[:i]
			}
			fmt.Fprintf(&b, "  %s %s\n", commit.Hash.String()[:8], subject)
			count++
		}
		iter.Close()
	}

	return b.String(), true
}
