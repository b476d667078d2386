package admin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleCode_CanMutate(t *testing.T) {
	require.True(t, RoleCodeSuperAdmin.CanMutate())
	require.True(t, RoleCodeAdmin.CanMutate())
	require.False(t, RoleCodeViewer.CanMutate())
	require.False(t, RoleCode("AUDITOR").CanMutate())
}

func TestParseRoleCode_Normalizes(t *testing.T) {
	c, err := ParseRoleCode(" admin ")
	require.NoError(t, err)
	require.Equal(t, RoleCodeAdmin, c)

	_, err = ParseRoleCode("a")
	require.ErrorIs(t, err, ErrInvalidRoleCode)
}
