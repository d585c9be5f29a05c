// Package identity adapts Firebase Authentication to the domain IdentityProvider.
package identity

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

// authClient is the subset of *auth.Client used here.
type authClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]any) error
	DeleteUser(ctx context.Context, uid string) error
	Users(ctx context.Context, nextPageToken string) *auth.UserIterator
}

type firebaseIdentity struct {
	client authClient
	logger *slog.Logger
}

// NewFirebaseIdentity creates the IdentityProvider backed by Firebase Auth.
func NewFirebaseIdentity(client *auth.Client, logger *slog.Logger) service.IdentityProvider {
	return &firebaseIdentity{client: client, logger: logger}
}

// VerifyIDToken checks the token signature and expiry and reads the role claim.
func (f *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedToken, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidIDToken, err.Error())
	}

	email, _ := token.Claims["email"].(string)

	return &service.VerifiedToken{
		UID:   token.UID,
		Email: email,
		Role:  entity.RoleFromClaim(token.Claims[constants.RoleClaim]),
	}, nil
}

func (f *firebaseIdentity) CreateAccount(ctx context.Context, account service.NewAccount) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(account.Email).
		Password(account.Password)
	if account.DisplayName != "" {
		params = params.DisplayName(account.DisplayName)
	}

	record, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", errors.WithStack(service.ErrIdentityEmailExists)
		}

		return "", errors.Wrap(err, "failed to create identity account")
	}

	f.logger.Info("Identity account created", slog.String("uid", record.UID))

	return record.UID, nil
}

// SetRole replaces the role claim and keeps any other custom claims on the account.
func (f *firebaseIdentity) SetRole(ctx context.Context, uid string, role entity.Role) error {
	record, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return errors.WithStack(service.ErrIdentityAccountNotFound)
		}

		return errors.Wrap(err, "failed to load identity account")
	}

	claims := make(map[string]any, len(record.CustomClaims)+1)
	maps.Copy(claims, record.CustomClaims)
	claims[constants.RoleClaim] = role.String()

	if err := f.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		if auth.IsUserNotFound(err) {
			return errors.WithStack(service.ErrIdentityAccountNotFound)
		}

		return errors.Wrap(err, "failed to set role claim")
	}

	return nil
}

func (f *firebaseIdentity) DeleteAccount(ctx context.Context, uid string) error {
	if err := f.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return errors.WithStack(service.ErrIdentityAccountNotFound)
		}

		return errors.Wrap(err, "failed to delete identity account")
	}

	return nil
}

// ListAccounts walks every page of the account listing.
func (f *firebaseIdentity) ListAccounts(ctx context.Context) ([]*entity.IdentityAccount, error) {
	var accounts []*entity.IdentityAccount

	iter := f.client.Users(ctx, "")
	for {
		user, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list identity accounts")
		}

		accounts = append(accounts, toIdentityAccount(user.UserRecord))
	}

	return accounts, nil
}

func toIdentityAccount(record *auth.UserRecord) *entity.IdentityAccount {
	account := &entity.IdentityAccount{
		UID:      record.UID,
		Disabled: record.Disabled,
		Role:     entity.RoleFromClaim(record.CustomClaims[constants.RoleClaim]),
	}
	if record.UserInfo != nil {
		account.Email = record.Email
		account.DisplayName = record.DisplayName
	}
	if record.UserMetadata != nil && record.UserMetadata.CreationTimestamp > 0 {
		account.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp).UTC()
	}

	return account
}
