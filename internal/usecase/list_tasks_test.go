package usecase

import (
	"context"
	"testing"

	"github.com/qretaio/tasq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listFixture = "# Planner\n## Tasks\n- [ ] design schema\n- [~] wire API\n- [x] scaffold repo"

func TestListTasks_LocalHidesCompleted(t *testing.T) {
	store := newMockTaskFileStore()
	store.files["/work/planner/TASKS.md"] = listFixture
	uc := NewListTasks(NewScanProjects(newMockSettingsStore(), &mockScanner{}), store)

	out, err := uc.Execute(context.Background(), ListTasksInput{Dir: "/work/planner"})
	require.NoError(t, err)
	require.Len(t, out.Projects, 1)
	assert.Equal(t, "planner", out.Projects[0].Name)

	tasks := out.Projects[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "design schema", tasks[0].Description)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "wire API", tasks[1].Description)
	assert.Equal(t, "2", tasks[1].ID)
}

func TestListTasks_LocalAll(t *testing.T) {
	store := newMockTaskFileStore()
	store.files["/work/planner/TASKS.md"] = listFixture
	uc := NewListTasks(NewScanProjects(newMockSettingsStore(), &mockScanner{}), store)

	out, err := uc.Execute(context.Background(), ListTasksInput{Dir: "/work/planner", All: true})
	require.NoError(t, err)
	assert.Len(t, out.Projects[0].Tasks, 3)
}

func TestListTasks_LocalPendingOnly(t *testing.T) {
	store := newMockTaskFileStore()
	store.files["/work/planner/TASKS.md"] = listFixture
	uc := NewListTasks(NewScanProjects(newMockSettingsStore(), &mockScanner{}), store)

	out, err := uc.Execute(context.Background(), ListTasksInput{Dir: "/work/planner", PendingOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Projects[0].Tasks, 1)
	assert.Equal(t, "design schema", out.Projects[0].Tasks[0].Description)
}

func TestListTasks_LocalMissingFile(t *testing.T) {
	uc := NewListTasks(NewScanProjects(newMockSettingsStore(), &mockScanner{}), newMockTaskFileStore())

	_, err := uc.Execute(context.Background(), ListTasksInput{Dir: "/work/none"})
	assert.ErrorIs(t, err, domain.ErrNoTaskFile)
}

func TestListTasks_Global(t *testing.T) {
	scanner := &mockScanner{projects: []domain.ProjectResult{
		scannedProject("api", "a", "# API\n- [ ] auth\n- [x] setup"),
		scannedProject("planner", "p", "# Planner\n- [ ] schema"),
	}}
	uc := NewListTasks(NewScanProjects(newMockSettingsStore("~/src"), scanner), newMockTaskFileStore())

	out, err := uc.Execute(context.Background(), ListTasksInput{Global: true})
	require.NoError(t, err)
	require.Len(t, out.Projects, 2)
	require.Len(t, out.Projects[0].Tasks, 1)
	assert.Equal(t, "a1", out.Projects[0].Tasks[0].ID)
	assert.Equal(t, "p1", out.Projects[1].Tasks[0].ID)
}
