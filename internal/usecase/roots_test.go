package usecase

import (
	"context"
	"testing"

	"github.com/qretaio/tasq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManageRoots_AddAndRemove(t *testing.T) {
	uc := NewManageRoots(newMockSettingsStore("~/src"))

	out, err := uc.Add(context.Background(), ManageRootsInput{Path: "/opt/work"})
	require.NoError(t, err)
	assert.Equal(t, []string{"~/src", "/opt/work"}, out.Roots)

	_, err = uc.Add(context.Background(), ManageRootsInput{Path: "/opt/work"})
	assert.ErrorIs(t, err, domain.ErrRootExists)

	out, err = uc.Remove(context.Background(), ManageRootsInput{Path: "/opt/work"})
	require.NoError(t, err)
	assert.Equal(t, []string{"~/src"}, out.Roots)

	_, err = uc.Remove(context.Background(), ManageRootsInput{Path: "/opt/work"})
	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}
