package cli

import (
	"bytes"
	"testing"

	"github.com/qretaio/tasq/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns its
// stdout.
func execute(t *testing.T, f *testutil.Fixture, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(f.Container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_RegistersCommands(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	assert.Equal(t, "tasq", root.Name())

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"list", "init", "add", "start", "done", "do", "show", "config", "watch", "unwatch", "tui"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1.2.3")
}

func TestRootCommand_GroupsAssigned(t *testing.T) {
	root := NewRootCommand(nil, "test")
	for _, c := range root.Commands() {
		if c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		assert.NotEmpty(t, c.GroupID, "command %s has no group", c.Name())
	}
}
