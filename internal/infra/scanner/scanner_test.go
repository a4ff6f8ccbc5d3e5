package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/qretaio/tasq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.TaskFileName), []byte(content), 0o644))
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "api", "# API\n## Tasks\n- [ ] build auth\n- [x] setup")
	writeProject(t, root, "planner", "# Planner\n## Tasks\n- [~] sketch schema")

	projects, err := New(nil).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Lexicographic file order drives both result order and IDs.
	assert.Equal(t, "api", projects[0].Name)
	assert.Equal(t, "a", projects[0].RepoID)
	assert.Equal(t, "planner", projects[1].Name)
	assert.Equal(t, "p", projects[1].RepoID)

	require.Len(t, projects[0].Tasks, 2)
	assert.Equal(t, "a1", projects[0].Tasks[0].ID)
	assert.Equal(t, "a2", projects[0].Tasks[1].ID)
	assert.Equal(t, "p1", projects[1].Tasks[0].ID)
}

func TestScanner_ScanNestedWithinDepth(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, filepath.Join("team", "svc", "worker"), "# W\n- [ ] t")

	projects, err := New(nil).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "worker", projects[0].Name)
}

func TestScanner_ScanSkipsDeepAndVendored(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, filepath.Join("a", "b", "c", "d"), "# Deep\n- [ ] t")
	writeProject(t, root, filepath.Join("app", "node_modules", "pkg"), "# Dep\n- [ ] t")
	writeProject(t, root, "app", "# App\n- [ ] t")

	projects, err := New(nil).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "app", projects[0].Name)
}

func TestScanner_ScanMissingRoot(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "api", "# API\n- [ ] t")

	projects, err := New(nil).Scan(context.Background(), []string{filepath.Join(root, "nope"), root})
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

func TestScanner_ScanDuplicateNames(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	writeProject(t, root1, "api", "# API one\n- [ ] t")
	writeProject(t, root2, "api", "# API two\n- [ ] t")

	projects, err := New(nil).Scan(context.Background(), []string{root1, root2})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "API one", projects[0].Doc.Title)
}

func TestScanner_ScanManyProjects(t *testing.T) {
	root := t.TempDir()
	// Well past the read concurrency bound; every file must still be
	// parsed and ordered.
	names := make([]string, 0, 3*maxConcurrentReads)
	for i := 0; i < 3*maxConcurrentReads; i++ {
		name := fmt.Sprintf("proj%c", 'a'+i)
		writeProject(t, root, name, "# "+name+"\n- [ ] t")
		names = append(names, name)
	}

	projects, err := New(nil).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Len(t, projects, len(names))
	for i, name := range names {
		assert.Equal(t, name, projects[i].Name)
		require.Len(t, projects[i].Tasks, 1)
		assert.Equal(t, projects[i].RepoID+"1", projects[i].Tasks[0].ID)
	}
}

func TestScanner_ScanEmpty(t *testing.T) {
	projects, err := New(nil).Scan(context.Background(), []string{t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, projects)
}
