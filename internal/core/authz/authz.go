// Package authz is the pure policy core of TeamHub. It owns the closed role
// enumeration, the closed capability set, and the single capability→roles
// table every enforcement point derives from. It performs no I/O and holds no
// mutable state, so it can be called from any handler or goroutine freely.
package authz

// Role classifies an authenticated principal. Exactly one role per account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// DefaultRole is assumed for a principal whose account record carries no role
// (e.g. a freshly self-registered account).
const DefaultRole = RoleMember

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// Roles returns the closed role set.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleMember}
}

// CanAccess reports whether role is permitted by the allowed-role list.
// An empty role (unauthenticated, or profile not resolved), an unknown role,
// or an empty list all deny. Denial is a normal outcome, not an error.
func CanAccess(role Role, allowed []Role) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// Can resolves the capability table and applies CanAccess. Unknown
// capabilities deny.
func Can(role Role, c Capability) bool {
	allowed, ok := Allowed(c)
	if !ok {
		return false
	}
	return CanAccess(role, allowed)
}
