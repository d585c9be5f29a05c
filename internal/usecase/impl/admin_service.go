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
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// AdminServiceParams holds dependencies for the admin service, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	AgencyRepo  repository.AgencyRepository
	PackageRepo repository.PackageRepository
	BookingRepo repository.BookingRepository
	Identity    service.IdentityProvider
	Cache       service.StatsCache
	Logger      *slog.Logger
}

type adminService struct {
	userRepo    repository.UserRepository
	agencyRepo  repository.AgencyRepository
	packageRepo repository.PackageRepository
	bookingRepo repository.BookingRepository
	identity    service.IdentityProvider
	cache       service.StatsCache
	logger      *slog.Logger
	now         func() time.Time
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		agencyRepo:  params.AgencyRepo,
		packageRepo: params.PackageRepo,
		bookingRepo: params.BookingRepo,
		identity:    params.Identity,
		cache:       params.Cache,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// GetStats serves cached stats when available and recomputes otherwise.
// Cache failures are logged and never fail the request.
func (s *adminService) GetStats(ctx context.Context) (*entity.AdminStats, error) {
	log := loggerFrom(ctx, s.logger)

	cached, err := s.cache.GetAdminStats(ctx)
	if err != nil {
		log.Warn("Admin stats cache read failed", slog.Any("error", err))
	} else if cached != nil {
		log.Debug("Admin stats served from cache")

		return cached, nil
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetAdminStats(ctx, stats); err != nil {
		log.Warn("Admin stats cache write failed", slog.Any("error", err))
	}

	return stats, nil
}

func (s *adminService) compute(ctx context.Context) (*entity.AdminStats, error) {
	var in adminStatsInput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.userRepo.List(gctx)
		in.users = users

		return errors.Wrap(err, "failed to list users")
	})
	g.Go(func() error {
		accounts, err := s.identity.ListAccounts(gctx)
		if err != nil {
			return errors.Wrap(domainerrors.ErrIdentityProviderFailed, err.Error())
		}
		in.accounts = accounts

		return nil
	})
	g.Go(func() error {
		agencies, err := s.agencyRepo.List(gctx, repository.AgencyFilter{})
		in.agencies = agencies

		return errors.Wrap(err, "failed to list agencies")
	})
	g.Go(func() error {
		pkgs, err := s.packageRepo.List(gctx, repository.PackageFilter{})
		in.packages = pkgs

		return errors.Wrap(err, "failed to list packages")
	})
	g.Go(func() error {
		bookings, err := s.bookingRepo.List(gctx, repository.BookingFilter{})
		in.bookings = bookings

		return errors.Wrap(err, "failed to list bookings")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return computeAdminStats(in, s.now()), nil
}
