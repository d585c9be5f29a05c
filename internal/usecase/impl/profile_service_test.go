package impl

import (
	"context"
	"testing"

	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/repository"
	"tripbook/internal/domain/service"
	mockRepo "tripbook/internal/mocks/repository"
	mockSvc "tripbook/internal/mocks/service"
	mockUC "tripbook/internal/mocks/usecase"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	service  *profileService
	userRepo *mockRepo.MockUserRepository
	identity *mockSvc.MockIdentityProvider
	notifier *mockUC.MockNotificationUsecase
}

func createTestProfileService(t *testing.T) *profileFixture {
	fx := &profileFixture{
		userRepo: mockRepo.NewMockUserRepository(t),
		identity: mockSvc.NewMockIdentityProvider(t),
		notifier: mockUC.NewMockNotificationUsecase(t),
	}

	svc := NewProfileService(fx.userRepo, fx.identity, fx.notifier, discardLogger()).(*profileService)
	svc.now = fixedClock
	fx.service = svc

	return fx
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "u1")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_GetProfile_FindError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(nil, errors.New("db error"))

	user, err := fx.service.GetProfile(ctx, "u1")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to find user")
}

func TestProfileService_UpsertProfile_CreatesCustomer(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := usecase.Actor{UID: "u1", Email: "u1@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.UID == "u1" && u.Role == entity.RoleCustomer && u.City == "Mumbai" && u.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	user, err := fx.service.UpsertProfile(ctx, actor, &usecase.UpsertProfileInput{City: ptr("Mumbai")})

	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", user.Email)
}

func TestProfileService_UpsertProfile_MergesExisting(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := &entity.User{UID: "u1", Email: "u1@example.com", DisplayName: "Old", Role: entity.RoleAgency, Phone: "123"}

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(existing, nil)
	fx.userRepo.EXPECT().Upsert(ctx, existing).Return(nil)

	user, err := fx.service.UpsertProfile(ctx, usecase.Actor{UID: "u1"}, &usecase.UpsertProfileInput{DisplayName: ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", user.DisplayName)
	assert.Equal(t, "123", user.Phone)
	assert.Equal(t, entity.RoleAgency, user.Role)
	assert.Equal(t, fixedNow, *user.UpdatedAt)
}

func TestProfileService_AssignRole_SelfCustomer(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	actor := usecase.Actor{UID: "u1", Email: "u1@example.com"}

	fx.identity.EXPECT().SetRole(ctx, "u1", entity.RoleCustomer).Return(nil)
	fx.userRepo.EXPECT().SetRole(ctx, "u1", entity.RoleCustomer, "u1@example.com").Return(nil)
	fx.notifier.EXPECT().Enqueue(ctx, mock.MatchedBy(func(task *entity.NotificationTask) bool {
		return task.Kind == entity.NotificationRoleAssigned && task.TemplateParams["role"] == "customer"
	})).Return(nil)

	err := fx.service.AssignRole(ctx, actor, &usecase.AssignRoleInput{Role: entity.RoleCustomer})

	require.NoError(t, err)
}

func TestProfileService_AssignRole_Rules(t *testing.T) {
	tests := []struct {
		name  string
		actor usecase.Actor
		input *usecase.AssignRoleInput
		want  error
	}{
		{"self promote to admin", usecase.Actor{UID: "u1"}, &usecase.AssignRoleInput{Role: entity.RoleAdmin}, domainerrors.ErrForbidden},
		{"self promote to agency", usecase.Actor{UID: "u1"}, &usecase.AssignRoleInput{Role: entity.RoleAgency}, domainerrors.ErrForbidden},
		{"customer targets other", usecase.Actor{UID: "u1"}, &usecase.AssignRoleInput{UID: "u2", Role: entity.RoleCustomer}, domainerrors.ErrForbidden},
		{"unknown role", usecase.Actor{UID: "u1", Role: entity.RoleAdmin}, &usecase.AssignRoleInput{Role: "pilot"}, domainerrors.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			err := fx.service.AssignRole(context.Background(), tt.actor, tt.input)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestProfileService_AssignRole_AdminAssignsAgency(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := usecase.Actor{UID: "root", Role: entity.RoleAdmin}

	fx.identity.EXPECT().SetRole(ctx, "u2", entity.RoleAgency).Return(nil)
	fx.userRepo.EXPECT().SetRole(ctx, "u2", entity.RoleAgency, "u2@example.com").Return(nil)
	fx.notifier.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)

	err := fx.service.AssignRole(ctx, admin, &usecase.AssignRoleInput{UID: "u2", Role: entity.RoleAgency, Email: "u2@example.com"})

	require.NoError(t, err)
}

func TestProfileService_AssignRole_UnknownAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := usecase.Actor{UID: "root", Role: entity.RoleAdmin}

	fx.identity.EXPECT().SetRole(ctx, "ghost", entity.RoleAgency).Return(service.ErrIdentityAccountNotFound)

	err := fx.service.AssignRole(ctx, admin, &usecase.AssignRoleInput{UID: "ghost", Role: entity.RoleAgency})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
