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

type agencyFixture struct {
	service     *agencyService
	agencyRepo  *mockRepo.MockAgencyRepository
	userRepo    *mockRepo.MockUserRepository
	packageRepo *mockRepo.MockPackageRepository
	identity    *mockSvc.MockIdentityProvider
	notifier    *mockUC.MockNotificationUsecase
}

func createTestAgencyService(t *testing.T) *agencyFixture {
	fx := &agencyFixture{
		agencyRepo:  mockRepo.NewMockAgencyRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		packageRepo: mockRepo.NewMockPackageRepository(t),
		identity:    mockSvc.NewMockIdentityProvider(t),
		notifier:    mockUC.NewMockNotificationUsecase(t),
	}

	svc := NewAgencyService(AgencyServiceParams{
		AgencyRepo:  fx.agencyRepo,
		UserRepo:    fx.userRepo,
		PackageRepo: fx.packageRepo,
		Identity:    fx.identity,
		Notifier:    fx.notifier,
		Logger:      discardLogger(),
	}).(*agencyService)
	svc.now = fixedClock
	fx.service = svc

	return fx
}

func signupInput() *usecase.AgencySignupInput {
	return &usecase.AgencySignupInput{
		Email:    "hello@sunrise.example",
		Password: "s3cret!",
		Name:     "Sunrise Travels",
		Location: "Pune",
	}
}

func TestAgencyService_SubmitSignup(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, service.NewAccount{
		Email:       "hello@sunrise.example",
		Password:    "s3cret!",
		DisplayName: "Sunrise Travels",
	}).Return("agency-1", nil)
	fx.agencyRepo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.Agency) bool {
		return a.UID == "agency-1" && !a.Approved && a.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	agency, err := fx.service.SubmitSignup(ctx, signupInput())

	require.NoError(t, err)
	assert.Equal(t, "agency-1", agency.UID)
	assert.False(t, agency.Approved)
}

func TestAgencyService_SubmitSignup_DuplicateEmail(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, mock.Anything).Return("", service.ErrIdentityEmailExists)

	_, err := fx.service.SubmitSignup(ctx, signupInput())

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAgencyService_SubmitSignup_CompensatesOnRecordFailure(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, mock.Anything).Return("agency-1", nil)
	fx.agencyRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("deadline exceeded"))
	fx.identity.EXPECT().DeleteAccount(ctx, "agency-1").Return(nil)

	_, err := fx.service.SubmitSignup(ctx, signupInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create agency record")
}

func TestAgencyService_Decide_Approve(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()
	stored := &entity.Agency{UID: "agency-1", Name: "Sunrise Travels", Email: "hello@sunrise.example"}

	fx.agencyRepo.EXPECT().FindByID(ctx, "agency-1").RunAndReturn(func(context.Context, string) (*entity.Agency, error) {
		a := *stored

		return &a, nil
	}).Twice()
	fx.identity.EXPECT().SetRole(ctx, "agency-1", entity.RoleAgency).Return(nil).Twice()
	fx.userRepo.EXPECT().SetRole(ctx, "agency-1", entity.RoleAgency, "hello@sunrise.example").Return(nil).Twice()
	fx.agencyRepo.EXPECT().Update(ctx, "agency-1", mock.Anything).RunAndReturn(applyAgency(stored)).Twice()
	fx.notifier.EXPECT().Enqueue(ctx, mock.MatchedBy(func(task *entity.NotificationTask) bool {
		return task.Kind == entity.NotificationAgencyApproved && task.Recipient == "hello@sunrise.example"
	})).Return(nil).Once()

	res, err := fx.service.Decide(ctx, "agency-1", entity.AgencyApproved)
	require.NoError(t, err)
	assert.True(t, res.Agency.Approved)
	assert.Equal(t, fixedNow, *res.Agency.ApprovedAt)

	// Approving again is a no-op for the record and sends nothing.
	res, err = fx.service.Decide(ctx, "agency-1", entity.AgencyApproved)
	require.NoError(t, err)
	assert.True(t, res.Agency.Approved)
}

func TestAgencyService_Decide_Reject(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.agencyRepo.EXPECT().FindByID(ctx, "agency-1").Return(&entity.Agency{UID: "agency-1"}, nil)
	deleteAccount := fx.identity.EXPECT().DeleteAccount(ctx, "agency-1").Return(service.ErrIdentityAccountNotFound).Call
	fx.agencyRepo.EXPECT().Delete(ctx, "agency-1").Return(nil).NotBefore(deleteAccount)

	res, err := fx.service.Decide(ctx, "agency-1", entity.AgencyRejected)

	require.NoError(t, err)
	assert.Nil(t, res.Agency)
	assert.Equal(t, entity.AgencyRejected, res.Decision)
}

func TestAgencyService_Decide_RejectApprovedAgencyConflicts(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.agencyRepo.EXPECT().FindByID(ctx, "agency-1").Return(&entity.Agency{UID: "agency-1", Approved: true}, nil)

	res, err := fx.service.Decide(ctx, "agency-1", entity.AgencyRejected)

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domainerrors.ErrAgencyAlreadyApproved))
	fx.identity.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
	fx.agencyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAgencyService_Decide_RejectKeepsRecordWhenAccountDeleteFails(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.agencyRepo.EXPECT().FindByID(ctx, "agency-1").Return(&entity.Agency{UID: "agency-1"}, nil)
	fx.identity.EXPECT().DeleteAccount(ctx, "agency-1").Return(errors.New("quota exceeded"))

	_, err := fx.service.Decide(ctx, "agency-1", entity.AgencyRejected)

	assert.True(t, errors.Is(err, domainerrors.ErrIdentityProviderFailed))
}

func TestAgencyService_Decide_Errors(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	_, err := fx.service.Decide(ctx, "agency-1", entity.AgencyDecision("maybe"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDecision))

	fx.agencyRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrAgencyNotFound)
	_, err = fx.service.Decide(ctx, "ghost", entity.AgencyApproved)
	assert.True(t, errors.Is(err, domainerrors.ErrAgencyNotFound))
}

func TestAgencyService_GetApproved(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()

	fx.agencyRepo.EXPECT().FindByID(ctx, "pending").Return(&entity.Agency{UID: "pending"}, nil)
	fx.agencyRepo.EXPECT().FindByID(ctx, "live").Return(&entity.Agency{UID: "live", Approved: true}, nil)

	_, err := fx.service.GetApproved(ctx, "pending")
	assert.True(t, errors.Is(err, domainerrors.ErrAgencyNotFound))

	agency, err := fx.service.GetApproved(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "live", agency.UID)
}

func TestAgencyService_ListPending(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()
	approved := false

	fx.agencyRepo.EXPECT().List(ctx, repository.AgencyFilter{Approved: &approved}).
		Return([]*entity.Agency{{UID: "newer"}, {UID: "older"}}, nil)

	agencies, err := fx.service.ListPending(ctx)

	require.NoError(t, err)
	require.Len(t, agencies, 2)
	assert.Equal(t, "newer", agencies[0].UID)
	assert.Equal(t, "older", agencies[1].UID)
}

func TestAgencyService_UpdateProfile_RenamesPackages(t *testing.T) {
	fx := createTestAgencyService(t)
	ctx := context.Background()
	stored := &entity.Agency{UID: "agency-1", Name: "Old Name", Approved: true}
	pkg := &entity.TourPackage{PackageID: "pkg-1", AgencyID: "agency-1", AgencyName: "Old Name"}

	fx.agencyRepo.EXPECT().Update(ctx, "agency-1", mock.Anything).RunAndReturn(applyAgency(stored))
	fx.packageRepo.EXPECT().List(ctx, repository.PackageFilter{AgencyID: "agency-1"}).
		Return([]*entity.TourPackage{pkg}, nil)
	fx.packageRepo.EXPECT().Update(ctx, "pkg-1", mock.Anything).RunAndReturn(applyPackage(pkg))

	agency, err := fx.service.UpdateProfile(ctx, "agency-1", &usecase.UpdateAgencyProfileInput{
		Name:  ptr("New Name"),
		Phone: ptr("+91 90000 00000"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", agency.Name)
	assert.Equal(t, "+91 90000 00000", agency.Phone)
	assert.Equal(t, "New Name", pkg.AgencyName)
}
