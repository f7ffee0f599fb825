// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator who manages accounts and can delete records.
	RoleAdmin Role = "admin"
	// RoleClerk indicates a registration clerk who registers students and records payments.
	RoleClerk Role = "clerk"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClerk:
		return true
	default:
		return false
	}
}
