package entity

// Role is the closed set of staff roles in the system.
// Patients book without accounts and therefore carry no role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleAssistant:
		return true
	}
	return false
}

// IsStaff reports whether r may view and progress appointments.
func (r Role) IsStaff() bool {
	return r == RoleDoctor || r == RoleAssistant
}
