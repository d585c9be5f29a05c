package service

import (
	"context"
	"errors"

	"tripbook/internal/domain/entity"
)

var (
	// ErrIdentityAccountNotFound is returned when the provider has no account for a uid.
	ErrIdentityAccountNotFound = errors.New("identity account not found")
	// ErrIdentityEmailExists is returned when creating an account for an email already in use.
	ErrIdentityEmailExists = errors.New("identity email already exists")
	// ErrInvalidIDToken is returned when an ID token fails verification.
	ErrInvalidIDToken = errors.New("invalid id token")
)

// VerifiedToken is the caller identity carried by a verified ID token.
type VerifiedToken struct {
	UID   string
	Email string
	Role  entity.Role
}

// NewAccount holds the fields used to create an identity account.
type NewAccount struct {
	Email       string
	Password    string
	DisplayName string
}

// IdentityProvider defines the interface for the external account and token service.
type IdentityProvider interface {
	// VerifyIDToken validates a bearer token and returns the caller identity.
	VerifyIDToken(ctx context.Context, idToken string) (*VerifiedToken, error)

	// CreateAccount registers a new account and returns its uid.
	CreateAccount(ctx context.Context, account NewAccount) (string, error)

	// SetRole replaces the role custom claim on the account.
	SetRole(ctx context.Context, uid string, role entity.Role) error

	// DeleteAccount removes the account. Returns ErrIdentityAccountNotFound when absent.
	DeleteAccount(ctx context.Context, uid string) error

	// ListAccounts pages through every account held by the provider.
	ListAccounts(ctx context.Context) ([]*entity.IdentityAccount, error)
}
