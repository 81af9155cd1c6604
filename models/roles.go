package models

// Role defines the access level a grantee holds on a document.
// Roles form a strict lattice: read < write < owner.
type Role int

const (
	// RoleRead allows decrypting and reading document content and
	// submitted branches. Readers cannot create branches or grants.
	RoleRead Role = 1

	// RoleWrite allows everything RoleRead allows, plus creating
	// branches, merging submitted branches, and granting roles up to
	// RoleWrite. Writers cannot revoke access or mint owners.
	RoleWrite Role = 2

	// RoleOwner is the highest role. Exactly one owner grant exists per
	// document at any time; it is created atomically with the document.
	// Only the owner may revoke access.
	RoleOwner Role = 3
)

// Covers reports whether r is sufficient to act with the authority of
// other. A role always covers itself and every role below it.
func (r Role) Covers(other Role) bool {
	return r >= other
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRead, RoleWrite, RoleOwner:
		return true
	default:
		return false
	}
}

// String returns the wire/name form of the role.
func (r Role) String() string {
	switch r {
	case RoleRead:
		return "read"
	case RoleWrite:
		return "write"
	case RoleOwner:
		return "owner"
	default:
		return "unknown"
	}
}
