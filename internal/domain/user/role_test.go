package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simonik/internal/domain/user"
)

var fullPermissionSet = []string{
	user.PermManageUsers,
	user.PermManageIndicators,
	user.PermManageMonev,
	user.PermViewAllReports,
	user.PermConductMonev,
	user.PermViewOwnReports,
	user.PermManageSettings,
	user.PermExportPDF,
}

func TestAssignRole(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		wantRole user.Role
		perms    []string
	}{
		{
			name:     "Admin",
			email:    "admin.user@x.org",
			wantRole: user.RoleAdmin,
			perms:    fullPermissionSet,
		},
		{
			name:     "KetuaLPM",
			email:    "lpm.head@x.org",
			wantRole: user.RoleKetuaLPM,
			perms:    fullPermissionSet,
		},
		{
			name:     "Rektor",
			email:    "rektor@x.org",
			wantRole: user.RoleRektor,
			perms:    []string{user.PermConductMonev, user.PermViewAllReports, user.PermViewOwnReports, user.PermExportPDF},
		},
		{
			name:     "Dekan",
			email:    "dekan.fk@x.org",
			wantRole: user.RoleDekan,
			perms:    []string{user.PermConductMonev, user.PermViewOwnReports, user.PermExportPDF},
		},
		{
			name:     "Kaprodi",
			email:    "kaprodi.ti@x.org",
			wantRole: user.RoleKaprodi,
			perms:    []string{user.PermConductMonev, user.PermViewOwnReports, user.PermExportPDF},
		},
		{
			name:     "DefaultAuditee",
			email:    "student1@x.org",
			wantRole: user.RoleAuditee,
			perms:    []string{user.PermViewOwnReports},
		},
		{
			name:     "CaseInsensitive",
			email:    "ADMIN@X.ORG",
			wantRole: user.RoleAdmin,
			perms:    fullPermissionSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, perms := user.AssignRole(tt.email)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.perms, perms)
		})
	}
}

// "rektor.admin@x.org" matches both "rektor" and "admin"; the admin rule
// sits higher in the table, so it must win.
func TestAssignRolePriorityOrder(t *testing.T) {
	role, perms := user.AssignRole("rektor.admin@x.org")
	assert.Equal(t, user.RoleAdmin, role)
	assert.Equal(t, fullPermissionSet, perms)
}

// The returned slice is a copy: mutating it must not poison the policy
// table for later calls.
func TestAssignRoleReturnsCopy(t *testing.T) {
	_, perms := user.AssignRole("admin@x.org")
	require.NotEmpty(t, perms)
	perms[0] = "tampered"

	_, again := user.AssignRole("admin@x.org")
	assert.Equal(t, fullPermissionSet, again)
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []user.Role{
		user.RoleAdmin, user.RoleKetuaLPM, user.RoleRektor,
		user.RoleDekan, user.RoleKaprodi, user.RoleAuditee,
	} {
		assert.True(t, user.IsValidRole(r), string(r))
	}
	assert.False(t, user.IsValidRole(user.Role("Superuser")))
}

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		u, err := user.New("uid-1", "admin@x.org", "Admin", user.RoleAdmin, fullPermissionSet)
		require.NoError(t, err)
		assert.True(t, u.IsActive)
		assert.True(t, u.CreatedAt.IsZero(), "created_at is assigned by the store")
	})

	t.Run("MissingUID", func(t *testing.T) {
		_, err := user.New(" ", "admin@x.org", "Admin", user.RoleAdmin, nil)
		assert.ErrorIs(t, err, user.ErrInvalidUID)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		_, err := user.New("uid-1", "", "Admin", user.RoleAdmin, nil)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("BadRole", func(t *testing.T) {
		_, err := user.New("uid-1", "a@x.org", "A", user.Role("Nope"), nil)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
