// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a marketplace account as stored in the document store.
// The uid is shared with the identity provider account.
type User struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        Role       `json:"role"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	ProfilePic  string     `json:"profilePic,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// IdentityAccount is an account as held by the identity provider.
type IdentityAccount struct {
	UID         string
	Email       string
	DisplayName string
	Role        Role // From the role custom claim; RoleCustomer when unset.
	Disabled    bool
	CreatedAt   time.Time
}
