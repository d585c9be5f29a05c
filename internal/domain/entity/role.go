// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can hold, carried as a custom claim.
type Role string

const (
	// RoleCustomer indicates a traveller who books packages.
	RoleCustomer Role = "customer"
	// RoleAgency indicates an approved travel agency.
	RoleAgency Role = "agency"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAgency, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleFromClaim converts a raw claim value into a Role, defaulting to customer
// for missing or unknown values.
func RoleFromClaim(v any) Role {
	s, _ := v.(string)
	role := Role(s)
	if !role.IsValid() {
		return RoleCustomer
	}

	return role
}
