// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tripbook/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their uid.
	FindByID(ctx context.Context, uid string) (*entity.User, error)

	// Upsert merges the given profile into the stored document, creating it when absent.
	// CreatedAt is only written when the document does not exist yet.
	Upsert(ctx context.Context, user *entity.User) error

	// SetRole records the role (and email when not empty) on the user document, creating it when absent.
	SetRole(ctx context.Context, uid string, role entity.Role, email string) error

	// List returns every user document.
	List(ctx context.Context) ([]*entity.User, error)
}
