package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("a.txt")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestClient_Summary(t *testing.T) {
	dir := initRepo(t)

	summary, ok := NewClient().Summary(dir)
	require.True(t, ok)
	assert.Contains(t, summary, "branch: master")
	assert.Contains(t, summary, "worktree: clean")
	assert.Contains(t, summary, "initial commit")
}

func TestClient_SummaryDirtyWorktree(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("new\n"), 0o644))

	summary, ok := NewClient().Summary(dir)
	require.True(t, ok)
	assert.Contains(t, summary, "changed file(s)")
}

func TestClient_SummarySubdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	_, ok := NewClient().Summary(sub)
	assert.True(t, ok)
}

func TestClient_SummaryNotARepo(t *testing.T) {
	_, ok := NewClient().Summary(t.TempDir())
	assert.False(t, ok)
}
