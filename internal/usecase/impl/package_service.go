package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/repository"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PackageServiceParams holds dependencies for the package service, injected by Fx.
type PackageServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
	AgencyRepo  repository.AgencyRepository
	BookingRepo repository.BookingRepository
	Logger      *slog.Logger
}

type packageService struct {
	packageRepo repository.PackageRepository
	agencyRepo  repository.AgencyRepository
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		packageRepo: params.PackageRepo,
		agencyRepo:  params.AgencyRepo,
		bookingRepo: params.BookingRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// CreatePackage stores a new active package for an approved agency.
func (s *packageService) CreatePackage(ctx context.Context, agencyID string, input *usecase.CreatePackageInput) (*entity.TourPackage, error) {
	loggerFrom(ctx, s.logger).Info("Creating package", slog.String("agency_id", agencyID), slog.String("title", input.Title))

	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAgencyNotFound)
		}

		return nil, errors.Wrap(err, "failed to find agency")
	}

	if !agency.Approved {
		return nil, errors.WithStack(domainerrors.ErrAgencyNotApproved)
	}

	pkg := &entity.TourPackage{
		AgencyID:      agencyID,
		AgencyName:    agency.Name,
		Title:         input.Title,
		Destination:   input.Destination,
		Duration:      input.Duration,
		Price:         input.Price,
		MaxTravellers: input.MaxTravellers,
		Description:   input.Description,
		ImgURL:        input.ImgURL,
		Highlights:    nonNil(input.Highlights),
		Inclusions:    nonNil(input.Inclusions),
		Exclusions:    nonNil(input.Exclusions),
		Itinerary:     usecase.ToItinerary(input.Itinerary),
		IsActive:      true,
		CreatedAt:     s.now(),
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, errors.Wrap(err, "failed to create package")
	}

	return pkg, nil
}

// UpdatePackage patches a package after checking ownership. The document is left
// unchanged when the caller does not own it.
func (s *packageService) UpdatePackage(ctx context.Context, agencyID, packageID string, patch *usecase.UpdatePackageInput) (*entity.TourPackage, error) {
	loggerFrom(ctx, s.logger).Info("Updating package", slog.String("agency_id", agencyID), slog.String("package_id", packageID))

	pkg, err := s.packageRepo.Update(ctx, packageID, func(p *entity.TourPackage) error {
		if !p.IsOwnedBy(agencyID) {
			return errors.WithStack(domainerrors.ErrPackageOwnershipViolation)
		}

		now := s.now()
		applyPackagePatch(p, patch, now)
		p.UpdatedAt = &now

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
		}

		return nil, errors.Wrap(err, "failed to update package")
	}

	return pkg, nil
}

// DeletePackage deactivates a package; bookings keep referencing it.
func (s *packageService) DeletePackage(ctx context.Context, agencyID, packageID string) error {
	loggerFrom(ctx, s.logger).Info("Deactivating package", slog.String("agency_id", agencyID), slog.String("package_id", packageID))

	_, err := s.packageRepo.Update(ctx, packageID, func(p *entity.TourPackage) error {
		if !p.IsOwnedBy(agencyID) {
			return errors.WithStack(domainerrors.ErrPackageOwnershipViolation)
		}

		now := s.now()
		p.IsActive = false
		if p.DeactivatedAt == nil {
			p.DeactivatedAt = &now
		}
		p.UpdatedAt = &now

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return errors.WithStack(domainerrors.ErrPackageNotFound)
		}

		return errors.Wrap(err, "failed to delete package")
	}

	return nil
}

// ListAgencyPackages returns the agency's packages with booking statistics.
func (s *packageService) ListAgencyPackages(ctx context.Context, agencyID string) ([]*entity.PackageWithStats, error) {
	pkgs, err := s.packageRepo.List(ctx, repository.PackageFilter{AgencyID: agencyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agency packages")
	}

	bookings, err := s.bookingRepo.List(ctx, repository.BookingFilter{AgencyID: agencyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agency bookings")
	}

	return attachPackageStats(pkgs, bookings), nil
}

func (s *packageService) GetAgencySummary(ctx context.Context, agencyID string) (*entity.AgencySummary, error) {
	pkgs, err := s.ListAgencyPackages(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	return summarizeAgency(agencyID, pkgs), nil
}

// ListActivePackages returns the public catalogue.
func (s *packageService) ListActivePackages(ctx context.Context, destination string) ([]*entity.TourPackage, error) {
	approved := true
	agencies, err := s.agencyRepo.List(ctx, repository.AgencyFilter{Approved: &approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved agencies")
	}

	approvedIDs := make(map[string]struct{}, len(agencies))
	for _, a := range agencies {
		approvedIDs[a.UID] = struct{}{}
	}

	pkgs, err := s.packageRepo.List(ctx, repository.PackageFilter{ActiveOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active packages")
	}

	needle := strings.ToLower(strings.TrimSpace(destination))
	out := make([]*entity.TourPackage, 0, len(pkgs))
	for _, p := range pkgs {
		if _, ok := approvedIDs[p.AgencyID]; !ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Destination), needle) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// GetPackage returns a package only when it is active and its agency is approved.
func (s *packageService) GetPackage(ctx context.Context, packageID string) (*entity.TourPackage, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	if !pkg.IsActive {
		return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
	}

	agency, err := s.agencyRepo.FindByID(ctx, pkg.AgencyID)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
		}

		return nil, errors.Wrap(err, "failed to find agency")
	}

	if !agency.Approved {
		return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
	}

	return pkg, nil
}

func applyPackagePatch(p *entity.TourPackage, patch *usecase.UpdatePackageInput, now time.Time) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Destination != nil {
		p.Destination = *patch.Destination
	}
	if patch.Duration != nil {
		p.Duration = *patch.Duration
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.MaxTravellers != nil {
		p.MaxTravellers = *patch.MaxTravellers
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImgURL != nil {
		p.ImgURL = *patch.ImgURL
	}
	if patch.Highlights != nil {
		p.Highlights = nonNil(*patch.Highlights)
	}
	if patch.Inclusions != nil {
		p.Inclusions = nonNil(*patch.Inclusions)
	}
	if patch.Exclusions != nil {
		p.Exclusions = nonNil(*patch.Exclusions)
	}
	if patch.Itinerary != nil {
		p.Itinerary = usecase.ToItinerary(*patch.Itinerary)
	}
	if patch.IsActive != nil && *patch.IsActive != p.IsActive {
		p.IsActive = *patch.IsActive
		if p.IsActive {
			p.DeactivatedAt = nil
		} else {
			p.DeactivatedAt = &now
		}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
