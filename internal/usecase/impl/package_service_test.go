package impl

import (
	"context"
	"testing"
	"time"

	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/repository"
	mockRepo "tripbook/internal/mocks/repository"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type packageFixture struct {
	service     *packageService
	packageRepo *mockRepo.MockPackageRepository
	agencyRepo  *mockRepo.MockAgencyRepository
	bookingRepo *mockRepo.MockBookingRepository
}

func createTestPackageService(t *testing.T) *packageFixture {
	fx := &packageFixture{
		packageRepo: mockRepo.NewMockPackageRepository(t),
		agencyRepo:  mockRepo.NewMockAgencyRepository(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
	}

	svc := NewPackageService(PackageServiceParams{
		PackageRepo: fx.packageRepo,
		AgencyRepo:  fx.agencyRepo,
		BookingRepo: fx.bookingRepo,
		Logger:      discardLogger(),
	}).(*packageService)
	svc.now = fixedClock
	fx.service = svc

	return fx
}

func TestPackageService_CreatePackage(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.agencyRepo.EXPECT().FindByID(ctx, "agency-1").
		Return(&entity.Agency{UID: "agency-1", Name: "Sunrise Travels", Approved: true}, nil)
	fx.packageRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.TourPackage) bool {
		return p.AgencyID == "agency-1" &&
			p.AgencyName == "Sunrise Travels" &&
			p.IsActive &&
			p.Rating == 0 &&
			len(p.Itinerary) == 1 &&
			p.Highlights != nil
	})).Return(nil)

	pkg, err := fx.service.CreatePackage(ctx, "agency-1", &usecase.CreatePackageInput{
		Title:         "Kerala Backwaters",
		Destination:   "Kerala",
		Duration:      "5D/4N",
		Price:         25000,
		MaxTravellers: 10,
		Itinerary:     []usecase.ItineraryDayInput{{Day: 1, Title: "Arrival"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Sunrise Travels", pkg.AgencyName)
	assert.Equal(t, fixedNow, pkg.CreatedAt)
}

func TestPackageService_CreatePackage_UnapprovedAgency(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.agencyRepo.EXPECT().FindByID(ctx, "agency-1").Return(&entity.Agency{UID: "agency-1"}, nil)

	_, err := fx.service.CreatePackage(ctx, "agency-1", &usecase.CreatePackageInput{Title: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrAgencyNotApproved))
}

func TestPackageService_UpdatePackage_OwnershipViolationLeavesDocument(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	stored := &entity.TourPackage{PackageID: "pkg-1", AgencyID: "agency-1", Title: "Original", Price: 100, IsActive: true}

	fx.packageRepo.EXPECT().Update(ctx, "pkg-1", mock.Anything).RunAndReturn(applyPackage(stored))

	_, err := fx.service.UpdatePackage(ctx, "agency-2", "pkg-1", &usecase.UpdatePackageInput{Title: ptr("Hijacked")})

	assert.True(t, errors.Is(err, domainerrors.ErrPackageOwnershipViolation))
	assert.Equal(t, "Original", stored.Title)
	assert.Nil(t, stored.UpdatedAt)
}

func TestPackageService_UpdatePackage(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	stored := &entity.TourPackage{PackageID: "pkg-1", AgencyID: "agency-1", Title: "Original", Price: 100, IsActive: true}

	fx.packageRepo.EXPECT().Update(ctx, "pkg-1", mock.Anything).RunAndReturn(applyPackage(stored))

	pkg, err := fx.service.UpdatePackage(ctx, "agency-1", "pkg-1", &usecase.UpdatePackageInput{
		Price:      ptr(150.0),
		Highlights: &[]string{"Houseboat"},
		IsActive:   ptr(false),
	})

	require.NoError(t, err)
	assert.InDelta(t, 150.0, pkg.Price, 0.001)
	assert.Equal(t, []string{"Houseboat"}, pkg.Highlights)
	assert.False(t, pkg.IsActive)
	assert.Equal(t, fixedNow, *pkg.DeactivatedAt)
	assert.Equal(t, "agency-1", pkg.AgencyID)
}

func TestPackageService_UpdatePackage_NotFound(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().Update(ctx, "missing", mock.Anything).Return(nil, repository.ErrPackageNotFound)

	_, err := fx.service.UpdatePackage(ctx, "agency-1", "missing", &usecase.UpdatePackageInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrPackageNotFound))
}

func TestPackageService_DeletePackage_SoftDeletes(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	stored := &entity.TourPackage{PackageID: "pkg-1", AgencyID: "agency-1", IsActive: true}

	fx.packageRepo.EXPECT().Update(ctx, "pkg-1", mock.Anything).RunAndReturn(applyPackage(stored))

	require.NoError(t, fx.service.DeletePackage(ctx, "agency-1", "pkg-1"))

	assert.False(t, stored.IsActive)
	assert.Equal(t, fixedNow, *stored.DeactivatedAt)
}

func TestPackageService_DeletePackage_Forbidden(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	stored := &entity.TourPackage{PackageID: "pkg-1", AgencyID: "agency-1", IsActive: true}

	fx.packageRepo.EXPECT().Update(ctx, "pkg-1", mock.Anything).RunAndReturn(applyPackage(stored))

	err := fx.service.DeletePackage(ctx, "agency-2", "pkg-1")

	assert.True(t, errors.Is(err, domainerrors.ErrPackageOwnershipViolation))
	assert.True(t, stored.IsActive)
}

func TestPackageService_ListAgencyPackages_RevenueAfterCancel(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	pkgs := []*entity.TourPackage{{PackageID: "pkg-1", AgencyID: "agency-1", IsActive: true, CreatedAt: fixedNow}}
	b := &entity.Booking{BookingID: "bk-1", PackageID: "pkg-1", AgencyID: "agency-1", Status: entity.BookingConfirmed, Amount: 5000, PaymentID: "pay_1"}

	fx.packageRepo.EXPECT().List(ctx, repository.PackageFilter{AgencyID: "agency-1"}).Return(pkgs, nil)
	fx.bookingRepo.EXPECT().List(ctx, repository.BookingFilter{AgencyID: "agency-1"}).Return([]*entity.Booking{b}, nil)

	out, err := fx.service.ListAgencyPackages(ctx, "agency-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 5000.0, out[0].Stats.TotalRevenue, 0.001)

	b.Cancel(fixedNow)
	summary, err := fx.service.GetAgencySummary(ctx, "agency-1")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, summary.Totals.TotalRevenue, 0.001)
	assert.Equal(t, 1, summary.Totals.CancelledBookings)
}

func TestPackageService_ListActivePackages_HidesUnapprovedAgencies(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	approved := true

	fx.agencyRepo.EXPECT().List(ctx, repository.AgencyFilter{Approved: &approved}).
		Return([]*entity.Agency{{UID: "agency-1", Approved: true}}, nil)
	fx.packageRepo.EXPECT().List(ctx, repository.PackageFilter{ActiveOnly: true}).
		Return([]*entity.TourPackage{
			{PackageID: "p1", AgencyID: "agency-1", Destination: "North Goa", IsActive: true, CreatedAt: fixedNow},
			{PackageID: "p2", AgencyID: "agency-1", Destination: "Manali", IsActive: true, CreatedAt: fixedNow.Add(-time.Hour)},
			{PackageID: "p3", AgencyID: "pending-agency", Destination: "Goa", IsActive: true, CreatedAt: fixedNow},
		}, nil)

	out, err := fx.service.ListActivePackages(ctx, "goa")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].PackageID)
}

func TestPackageService_GetPackage(t *testing.T) {
	tests := []struct {
		name    string
		pkg     *entity.TourPackage
		agency  *entity.Agency
		wantErr error
	}{
		{
			name:   "active and approved",
			pkg:    &entity.TourPackage{PackageID: "p1", AgencyID: "a1", IsActive: true},
			agency: &entity.Agency{UID: "a1", Approved: true},
		},
		{
			name:    "inactive",
			pkg:     &entity.TourPackage{PackageID: "p1", AgencyID: "a1", IsActive: false},
			wantErr: domainerrors.ErrPackageNotFound,
		},
		{
			name:    "agency pending",
			pkg:     &entity.TourPackage{PackageID: "p1", AgencyID: "a1", IsActive: true},
			agency:  &entity.Agency{UID: "a1"},
			wantErr: domainerrors.ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPackageService(t)
			ctx := context.Background()

			fx.packageRepo.EXPECT().FindByID(ctx, "p1").Return(tt.pkg, nil)
			if tt.agency != nil {
				fx.agencyRepo.EXPECT().FindByID(ctx, "a1").Return(tt.agency, nil)
			}

			pkg, err := fx.service.GetPackage(ctx, "p1")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "p1", pkg.PackageID)
		})
	}
}
