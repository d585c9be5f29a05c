package impl

import (
	"context"
	"log/slog"
	"time"

	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/repository"
	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	identity service.IdentityProvider
	notifier usecase.NotificationUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	identity service.IdentityProvider,
	notifier usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		identity: identity,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// GetProfile retrieves the stored user profile.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	loggerFrom(ctx, srv.logger).Debug("Getting user profile", slog.String("uid", uid))

	user, err := srv.userRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpsertProfile merges the patch into the caller's profile, creating it as a customer when absent.
func (srv *profileService) UpsertProfile(ctx context.Context, actor usecase.Actor, input *usecase.UpsertProfileInput) (*entity.User, error) {
	loggerFrom(ctx, srv.logger).Info("Upserting user profile", slog.String("uid", actor.UID))

	user, err := srv.userRepo.FindByID(ctx, actor.UID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			UID:       actor.UID,
			Email:     actor.Email,
			Role:      actor.Role,
			CreatedAt: srv.now(),
		}
		if !user.Role.IsValid() {
			user.Role = entity.RoleCustomer
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user")
	default:
		now := srv.now()
		user.UpdatedAt = &now
		if user.Email == "" {
			user.Email = actor.Email
		}
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.ProfilePic != nil {
		user.ProfilePic = *input.ProfilePic
	}

	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user profile")
	}

	return user, nil
}

// AssignRole lets any caller make themself a customer; every other assignment needs an admin.
func (srv *profileService) AssignRole(ctx context.Context, actor usecase.Actor, input *usecase.AssignRoleInput) error {
	targetUID := input.UID
	if targetUID == "" {
		targetUID = actor.UID
	}

	loggerFrom(ctx, srv.logger).Info("Assigning role",
		slog.String("caller", actor.UID),
		slog.String("target", targetUID),
		slog.String("role", input.Role.String()),
	)

	if !input.Role.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidRole)
	}

	selfCustomer := targetUID == actor.UID && input.Role == entity.RoleCustomer
	if !selfCustomer && !actor.IsAdmin() {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	if err := srv.identity.SetRole(ctx, targetUID, input.Role); err != nil {
		if errors.Is(err, service.ErrIdentityAccountNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(domainerrors.ErrIdentityProviderFailed, err.Error())
	}

	email := input.Email
	if email == "" && targetUID == actor.UID {
		email = actor.Email
	}

	if err := srv.userRepo.SetRole(ctx, targetUID, input.Role, email); err != nil {
		return errors.Wrap(err, "failed to record role")
	}

	enqueueNotification(ctx, srv.notifier, srv.logger, &entity.NotificationTask{
		Kind:      entity.NotificationRoleAssigned,
		Recipient: email,
		TemplateParams: map[string]string{
			"role": input.Role.String(),
		},
	})

	return nil
}
