package impl

import (
	"context"
	"testing"

	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/repository"
	mockRepo "tripbook/internal/mocks/repository"
	mockSvc "tripbook/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	service     *adminService
	userRepo    *mockRepo.MockUserRepository
	agencyRepo  *mockRepo.MockAgencyRepository
	packageRepo *mockRepo.MockPackageRepository
	bookingRepo *mockRepo.MockBookingRepository
	identity    *mockSvc.MockIdentityProvider
	cache       *mockSvc.MockStatsCache
}

func createTestAdminService(t *testing.T) *adminFixture {
	fx := &adminFixture{
		userRepo:    mockRepo.NewMockUserRepository(t),
		agencyRepo:  mockRepo.NewMockAgencyRepository(t),
		packageRepo: mockRepo.NewMockPackageRepository(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		identity:    mockSvc.NewMockIdentityProvider(t),
		cache:       mockSvc.NewMockStatsCache(t),
	}

	svc := NewAdminService(AdminServiceParams{
		UserRepo:    fx.userRepo,
		AgencyRepo:  fx.agencyRepo,
		PackageRepo: fx.packageRepo,
		BookingRepo: fx.bookingRepo,
		Identity:    fx.identity,
		Cache:       fx.cache,
		Logger:      discardLogger(),
	}).(*adminService)
	svc.now = fixedClock
	fx.service = svc

	return fx
}

func (fx *adminFixture) expectCollections() {
	fx.userRepo.EXPECT().List(mock.Anything).Return([]*entity.User{{UID: "u1", Role: entity.RoleCustomer}}, nil)
	fx.identity.EXPECT().ListAccounts(mock.Anything).Return([]*entity.IdentityAccount{
		{UID: "u1", Role: entity.RoleCustomer},
		{UID: "new-agency", Role: entity.RoleAgency},
	}, nil)
	fx.agencyRepo.EXPECT().List(mock.Anything, repository.AgencyFilter{}).Return([]*entity.Agency{{UID: "new-agency"}}, nil)
	fx.packageRepo.EXPECT().List(mock.Anything, repository.PackageFilter{}).Return([]*entity.TourPackage{{PackageID: "p1", IsActive: true}}, nil)
	fx.bookingRepo.EXPECT().List(mock.Anything, repository.BookingFilter{}).Return([]*entity.Booking{
		{BookingID: "b1", Status: entity.BookingConfirmed, Amount: 5000},
		{BookingID: "b2", Status: entity.BookingCancelled, Amount: 700},
	}, nil)
}

func TestAdminService_GetStats_ComputesOnCacheMiss(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetAdminStats(ctx).Return(nil, nil)
	fx.expectCollections()
	fx.cache.EXPECT().SetAdminStats(ctx, mock.Anything).Return(nil)

	stats, err := fx.service.GetStats(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 5000.0, stats.TotalRevenue, 0.001)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.AgencyUsers)
	assert.Equal(t, 1, stats.PendingAgencies)
	assert.Equal(t, fixedNow, stats.GeneratedAt)
}

func TestAdminService_GetStats_ServesCache(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	cached := &entity.AdminStats{TotalBookings: 42}

	fx.cache.EXPECT().GetAdminStats(ctx).Return(cached, nil)

	stats, err := fx.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Same(t, cached, stats)
}

func TestAdminService_GetStats_CacheFailureFallsBack(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetAdminStats(ctx).Return(nil, errors.New("connection refused"))
	fx.expectCollections()
	fx.cache.EXPECT().SetAdminStats(ctx, mock.Anything).Return(errors.New("connection refused"))

	stats, err := fx.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalBookings)
}

func TestAdminService_GetStats_IdentityFailure(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetAdminStats(ctx).Return(nil, nil)
	fx.userRepo.EXPECT().List(mock.Anything).Return(nil, nil).Maybe()
	fx.identity.EXPECT().ListAccounts(mock.Anything).Return(nil, errors.New("permission denied"))
	fx.agencyRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	fx.packageRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	fx.bookingRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := fx.service.GetStats(ctx)

	assert.True(t, errors.Is(err, domainerrors.ErrIdentityProviderFailed))
}
