package routes

import (
	"testing"

	"teamhub/internal/core/authz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every route in the policy table must point at a capability the permission
// table knows. An unknown capability would make RequireCapability deny every
// request on that route, which is safe but always a bug.
func TestRoutePoliciesReferenceKnownCapabilities(t *testing.T) {
	for _, p := range RoutePolicies() {
		_, ok := authz.Allowed(p.Capability)
		assert.True(t, ok, "route %s %s references unknown capability %q", p.Method, p.Path, p.Capability)
	}
}

func TestRoutePoliciesHaveNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range RoutePolicies() {
		key := p.Method + " " + p.Path
		assert.False(t, seen[key], "duplicate route policy for %s", key)
		seen[key] = true
	}
}

// The route table and the permission table must agree on the read/write
// split: view capabilities are open to every role, mutate-class capabilities
// (create/edit/delete/mark/manage/record/export) are admin-only. The class
// comes from the capability itself, not the HTTP verb — report exports are
// GET routes but carry a mutate-class capability.
func TestRoutePoliciesMatchPermissionTable(t *testing.T) {
	for _, p := range RoutePolicies() {
		allowed, ok := authz.Allowed(p.Capability)
		require.True(t, ok)

		if p.Capability.Mutating() {
			assert.True(t, authz.CanAccess(authz.RoleAdmin, allowed))
			assert.False(t, authz.CanAccess(authz.RoleManager, allowed),
				"manager should not hold %q on %s %s", p.Capability, p.Method, p.Path)
			assert.False(t, authz.CanAccess(authz.RoleMember, allowed),
				"member should not hold %q on %s %s", p.Capability, p.Method, p.Path)
		} else {
			assert.Equal(t, "GET", p.Method,
				"%s %s mutates but is guarded by view capability %q", p.Method, p.Path, p.Capability)
			for _, role := range authz.Roles() {
				assert.True(t, authz.CanAccess(role, allowed),
					"role %q should be able to read %s", role, p.Path)
			}
		}
	}
}

// Every capability in the permission table must be exercised by at least one
// route. A capability with no route is dead policy and a sign the table and
// the HTTP surface have drifted apart.
func TestEveryCapabilityIsRouted(t *testing.T) {
	routed := make(map[authz.Capability]bool)
	for _, p := range RoutePolicies() {
		routed[p.Capability] = true
	}

	for _, capability := range authz.Capabilities() {
		assert.True(t, routed[capability], "capability %q has no route", capability)
	}
}

func TestContributionUpdateRoutePolicy(t *testing.T) {
	capability, ok := capabilityFor("PUT", "/contributions/:id")
	require.True(t, ok)
	assert.Equal(t, authz.EditContribution, capability)
}

// Report exports read data but are still admin-only: the export capability
// is mutate-class even though the routes answer GET.
func TestReportExportRoutesAreAdminOnly(t *testing.T) {
	paths := []string{"/reports/members", "/reports/fees", "/reports/events/:id/attendance"}
	for _, path := range paths {
		capability, ok := capabilityFor("GET", path)
		require.True(t, ok, "no policy entry for GET %s", path)
		assert.Equal(t, authz.ExportReports, capability)
		assert.True(t, capability.Mutating())

		allowed, ok := authz.Allowed(capability)
		require.True(t, ok)
		assert.True(t, authz.CanAccess(authz.RoleAdmin, allowed))
		assert.False(t, authz.CanAccess(authz.RoleManager, allowed))
		assert.False(t, authz.CanAccess(authz.RoleMember, allowed))
	}
}

func TestCapabilityForLookup(t *testing.T) {
	capability, ok := capabilityFor("POST", "/members")
	require.True(t, ok)
	assert.Equal(t, authz.CreateMember, capability)

	_, ok = capabilityFor("PATCH", "/members")
	assert.False(t, ok)

	_, ok = capabilityFor("GET", "/nonexistent")
	assert.False(t, ok)
}
