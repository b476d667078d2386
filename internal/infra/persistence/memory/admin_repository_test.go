package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dom "example.com/admin-console/internal/domain/admin"
)

func TestAdminRepository_AddAndGet(t *testing.T) {
	repo := NewAdminRepository()
	added := repo.Add(dom.Admin{Username: "ops", PasswordHash: "$2a$hash"})

	require.Equal(t, int64(1), added.ID)
	require.Equal(t, dom.RoleCodeAdmin, added.RoleCode)

	got, err := repo.GetByUsername(context.Background(), "ops")
	require.NoError(t, err)
	require.Equal(t, added, *got)
}

func TestAdminRepository_AddReplacesKeepingID(t *testing.T) {
	repo := NewAdminRepository()
	repo.Add(dom.Admin{Username: "ops", PasswordHash: "old"})
	repo.Add(dom.Admin{Username: "viewer", PasswordHash: "v", RoleCode: dom.RoleCodeViewer})
	replaced := repo.Add(dom.Admin{Username: "ops", PasswordHash: "new"})

	require.Equal(t, int64(1), replaced.ID)
	got, err := repo.GetByUsername(context.Background(), "ops")
	require.NoError(t, err)
	require.Equal(t, "new", got.PasswordHash)
}

func TestAdminRepository_UnknownUsername(t *testing.T) {
	repo := NewAdminRepository()

	_, err := repo.GetByUsername(context.Background(), "nobody")

	require.ErrorIs(t, err, dom.ErrAdminNotFound)
}
