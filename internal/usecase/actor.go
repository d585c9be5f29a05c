// Package usecase contains the application-specific business rules.
package usecase

import "tripbook/internal/domain/entity"

// Actor is the authenticated caller of a use case.
type Actor struct {
	UID   string
	Email string
	Role  entity.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}
