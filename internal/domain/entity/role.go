package entity

// Role represents the application-level role held by an account.
type Role string

const (
	// RoleUser indicates a regular user account.
	RoleUser Role = "user"
	// RoleGlobalAdmin indicates a global application administrator.
	RoleGlobalAdmin Role = "globalApplicationAdmin"
	// RoleDefaultGlobalAdmin indicates the bootstrap DGAA account. There is
	// exactly one, maintained by the reconciliation job.
	RoleDefaultGlobalAdmin Role = "defaultGlobalApplicationAdmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGlobalAdmin, RoleDefaultGlobalAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries global administrator privileges.
func (r Role) IsAdmin() bool {
	return r == RoleGlobalAdmin || r == RoleDefaultGlobalAdmin
}
