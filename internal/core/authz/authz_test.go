package authz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccess(t *testing.T) {
	all := []Role{RoleAdmin, RoleManager, RoleMember}

	tests := []struct {
		name    string
		role    Role
		allowed []Role
		want    bool
	}{
		{"admin in admin-only", RoleAdmin, []Role{RoleAdmin}, true},
		{"manager in admin-only", RoleManager, []Role{RoleAdmin}, false},
		{"member in admin-only", RoleMember, []Role{RoleAdmin}, false},
		{"member in all", RoleMember, all, true},
		{"manager in all", RoleManager, all, true},
		{"empty role denies", "", all, false},
		{"empty role empty list denies", "", nil, false},
		{"known role empty list denies", RoleAdmin, nil, false},
		{"unknown role denies", Role("superuser"), all, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.role, tt.allowed))
		})
	}
}

func TestCanUnknownCapabilityDenies(t *testing.T) {
	assert.False(t, Can(RoleAdmin, Capability("missiles.launch")))
}

func TestCapabilityTableShape(t *testing.T) {
	caps := Capabilities()
	require.NotEmpty(t, caps)

	for _, c := range caps {
		allowed, ok := Allowed(c)
		require.True(t, ok)
		require.NotEmpty(t, allowed, "capability %s has no allowed roles", c)

		for _, r := range allowed {
			assert.True(t, r.Valid(), "capability %s lists unknown role %q", c, r)
		}

		// Broad read, narrow write: every view capability admits all three
		// roles, everything else is admin-only.
		if strings.HasSuffix(string(c), ".view") {
			assert.ElementsMatch(t, Roles(), allowed, "view capability %s should admit every role", c)
			assert.False(t, c.Mutating())
		} else {
			assert.Equal(t, []Role{RoleAdmin}, allowed, "mutating capability %s should be admin-only", c)
			assert.True(t, c.Mutating())
		}
	}
}

func TestAdminHasEveryCapability(t *testing.T) {
	for _, c := range Capabilities() {
		assert.True(t, Can(RoleAdmin, c), "admin should hold %s", c)
	}
}

func TestMemberAndManagerHoldOnlyViews(t *testing.T) {
	for _, role := range []Role{RoleManager, RoleMember} {
		for _, c := range Capabilities() {
			got := Can(role, c)
			if strings.HasSuffix(string(c), ".view") {
				assert.True(t, got, "%s should hold %s", role, c)
			} else {
				assert.False(t, got, "%s should not hold %s", role, c)
			}
		}
	}
}

func TestMemberCannotCreateMemberButCanView(t *testing.T) {
	createAllowed, ok := Allowed(CreateMember)
	require.True(t, ok)
	assert.False(t, CanAccess(RoleMember, createAllowed))

	viewAllowed, ok := Allowed(ViewMembers)
	require.True(t, ok)
	assert.True(t, CanAccess(RoleMember, viewAllowed))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleMember.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("ADMIN").Valid())
}
