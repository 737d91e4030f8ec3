package authz

// Capability names a gatable action. The set is closed: every route guard and
// every policy listing refers to one of these constants.
type Capability string

const (
	ViewMembers  Capability = "members.view"
	CreateMember Capability = "members.create"
	EditMember   Capability = "members.edit"
	DeleteMember Capability = "members.delete"

	ViewEvents  Capability = "events.view"
	CreateEvent Capability = "events.create"
	EditEvent   Capability = "events.edit"
	DeleteEvent Capability = "events.delete"

	ViewAttendance Capability = "attendance.view"
	MarkAttendance Capability = "attendance.mark"

	ViewLeadership   Capability = "leadership.view"
	ManageLeadership Capability = "leadership.manage"

	ViewContributions  Capability = "contributions.view"
	CreateContribution Capability = "contributions.create"
	EditContribution   Capability = "contributions.edit"
	DeleteContribution Capability = "contributions.delete"

	ViewFees         Capability = "fees.view"
	ManageFees       Capability = "fees.manage"
	RecordFeePayment Capability = "fees.record_payment"

	ViewInventory   Capability = "inventory.view"
	ManageInventory Capability = "inventory.manage"

	ViewDashboard Capability = "dashboard.view"
	ExportReports Capability = "reports.export"
)

var allRoles = []Role{RoleAdmin, RoleManager, RoleMember}
var adminOnly = []Role{RoleAdmin}

// capabilityRoles is the authoritative permission table. Reads are open to
// every role; writes are concentrated on admin. Constructed once at init,
// never mutated afterwards.
var capabilityRoles = map[Capability][]Role{
	ViewMembers:  allRoles,
	CreateMember: adminOnly,
	EditMember:   adminOnly,
	DeleteMember: adminOnly,

	ViewEvents:  allRoles,
	CreateEvent: adminOnly,
	EditEvent:   adminOnly,
	DeleteEvent: adminOnly,

	ViewAttendance: allRoles,
	MarkAttendance: adminOnly,

	ViewLeadership:   allRoles,
	ManageLeadership: adminOnly,

	ViewContributions:  allRoles,
	CreateContribution: adminOnly,
	EditContribution:   adminOnly,
	DeleteContribution: adminOnly,

	ViewFees:         allRoles,
	ManageFees:       adminOnly,
	RecordFeePayment: adminOnly,

	ViewInventory:   allRoles,
	ManageInventory: adminOnly,

	ViewDashboard: allRoles,
	ExportReports: adminOnly,
}

// Allowed returns the roles permitted for a capability. The returned slice
// must be treated as read-only.
func Allowed(c Capability) ([]Role, bool) {
	allowed, ok := capabilityRoles[c]
	return allowed, ok
}

// Capabilities returns every known capability. Order is not significant.
func Capabilities() []Capability {
	caps := make([]Capability, 0, len(capabilityRoles))
	for c := range capabilityRoles {
		caps = append(caps, c)
	}
	return caps
}

// Mutating reports whether a capability grants write authority. Used by the
// policy consistency test to assert the broad-read/narrow-write split.
func (c Capability) Mutating() bool {
	allowed, ok := capabilityRoles[c]
	if !ok {
		return false
	}
	return len(allowed) == 1 && allowed[0] == RoleAdmin
}
