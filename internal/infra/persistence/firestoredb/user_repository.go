package firestoredb

import (
	"context"
	"time"

	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"
	"tripbook/internal/errors"
	"tripbook/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type userRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewUserRepository creates the Firestore backed user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client, now: time.Now}
}

func (repo *userRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

func (repo *userRepository) FindByID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := repo.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var m model.UserModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode user")
	}

	return toUserDomain(uid, &m), nil
}

// Upsert writes the full profile. The caller has already merged it with the stored document.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	if _, err := repo.users().Doc(user.UID).Set(ctx, fromUserDomain(user)); err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	return nil
}

// SetRole merges the role into the document, creating it with createdAt when absent.
func (repo *userRepository) SetRole(ctx context.Context, uid string, role entity.Role, email string) error {
	ref := repo.users().Doc(uid)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		now := repo.now()
		fields := map[string]any{
			"role":      role.String(),
			"updatedAt": now,
		}
		if email != "" {
			fields["email"] = email
		}

		_, err := tx.Get(ref)
		switch {
		case isNotFound(err):
			fields["createdAt"] = now
		case err != nil:
			return errors.Wrap(err, "failed to read user")
		}

		return tx.Set(ref, fields, firestore.MergeAll)
	})
	if err != nil {
		return errors.Wrap(err, "failed to set user role")
	}

	return nil
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	snaps, err := repo.users().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return decodeAll(snaps, toUserDomain)
}

func toUserDomain(uid string, m *model.UserModel) *entity.User {
	return &entity.User{
		UID:         uid,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        entity.Role(m.Role),
		Phone:       m.Phone,
		Address:     m.Address,
		City:        m.City,
		ProfilePic:  m.ProfilePic,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		Phone:       u.Phone,
		Address:     u.Address,
		City:        u.City,
		ProfilePic:  u.ProfilePic,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
