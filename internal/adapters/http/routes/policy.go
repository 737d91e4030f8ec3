package routes

import (
	"teamhub/internal/core/authz"
)

// RoutePolicy binds one protected route to the capability that gates it.
// The routes below and the permission table in the authz package are the two
// halves of the same policy: route registration reads this table, so a route
// cannot silently drift from the capability it was specified with.
type RoutePolicy struct {
	Method     string
	Path       string
	Capability authz.Capability
}

// routePolicies is the authoritative route-to-capability table. Paths are
// relative to the /api/v1 prefix.
var routePolicies = []RoutePolicy{
	// Members
	{"GET", "/members", authz.ViewMembers},
	{"GET", "/members/search", authz.ViewMembers},
	{"GET", "/members/:id", authz.ViewMembers},
	{"POST", "/members", authz.CreateMember},
	{"PUT", "/members/:id", authz.EditMember},
	{"DELETE", "/members/:id", authz.DeleteMember},
	{"GET", "/members/:id/attendance", authz.ViewAttendance},
	{"GET", "/members/:id/fees", authz.ViewFees},

	// Events
	{"GET", "/events", authz.ViewEvents},
	{"GET", "/events/upcoming", authz.ViewEvents},
	{"GET", "/events/:id", authz.ViewEvents},
	{"POST", "/events", authz.CreateEvent},
	{"PUT", "/events/:id", authz.EditEvent},
	{"DELETE", "/events/:id", authz.DeleteEvent},
	{"GET", "/events/:id/attendance", authz.ViewAttendance},
	{"POST", "/events/:id/attendance", authz.MarkAttendance},

	// Leadership
	{"GET", "/leadership", authz.ViewLeadership},
	{"POST", "/leadership", authz.ManageLeadership},
	{"PUT", "/leadership/:id/end", authz.ManageLeadership},
	{"DELETE", "/leadership/:id", authz.ManageLeadership},

	// Contributions
	{"GET", "/contributions", authz.ViewContributions},
	{"GET", "/contributions/:id", authz.ViewContributions},
	{"POST", "/contributions", authz.CreateContribution},
	{"PUT", "/contributions/:id", authz.EditContribution},
	{"DELETE", "/contributions/:id", authz.DeleteContribution},

	// Fees
	{"GET", "/fees/periods", authz.ViewFees},
	{"GET", "/fees", authz.ViewFees},
	{"GET", "/fees/:id", authz.ViewFees},
	{"POST", "/fees", authz.ManageFees},
	{"POST", "/fees/:id/payments", authz.RecordFeePayment},
	{"DELETE", "/fees/:id", authz.ManageFees},

	// Inventory
	{"GET", "/inventory", authz.ViewInventory},
	{"GET", "/inventory/:id", authz.ViewInventory},
	{"POST", "/inventory", authz.ManageInventory},
	{"PUT", "/inventory/:id", authz.ManageInventory},
	{"DELETE", "/inventory/:id", authz.ManageInventory},

	// Dashboard
	{"GET", "/dashboard", authz.ViewDashboard},

	// Reports
	{"GET", "/reports/members", authz.ExportReports},
	{"GET", "/reports/fees", authz.ExportReports},
	{"GET", "/reports/events/:id/attendance", authz.ExportReports},
}

// capabilityFor looks up the capability that guards a route. A protected
// route missing from the table is a programming error the caller must treat
// as fatal, not a case to wave through.
func capabilityFor(method, path string) (authz.Capability, bool) {
	for _, p := range routePolicies {
		if p.Method == method && p.Path == path {
			return p.Capability, true
		}
	}
	return "", false
}

// RoutePolicies returns a copy of the route-to-capability table.
func RoutePolicies() []RoutePolicy {
	out := make([]RoutePolicy, len(routePolicies))
	copy(out, routePolicies)
	return out
}
