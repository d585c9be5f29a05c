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
)

// AgencyServiceParams holds dependencies for the agency service, injected by Fx.
type AgencyServiceParams struct {
	fx.In

	AgencyRepo  repository.AgencyRepository
	UserRepo    repository.UserRepository
	PackageRepo repository.PackageRepository
	Identity    service.IdentityProvider
	Notifier    usecase.NotificationUsecase
	Logger      *slog.Logger
}

type agencyService struct {
	agencyRepo  repository.AgencyRepository
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
	identity    service.IdentityProvider
	notifier    usecase.NotificationUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewAgencyService is the constructor for agencyService.
func NewAgencyService(params AgencyServiceParams) usecase.AgencyUsecase {
	return &agencyService{
		agencyRepo:  params.AgencyRepo,
		userRepo:    params.UserRepo,
		packageRepo: params.PackageRepo,
		identity:    params.Identity,
		notifier:    params.Notifier,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// SubmitSignup creates the identity account, then the pending agency record.
// The account is removed again when the record cannot be written.
func (s *agencyService) SubmitSignup(ctx context.Context, input *usecase.AgencySignupInput) (*entity.Agency, error) {
	log := loggerFrom(ctx, s.logger)
	log.Info("Agency signup", slog.String("email", input.Email))

	uid, err := s.identity.CreateAccount(ctx, service.NewAccount{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityEmailExists) {
			return nil, errors.WithStack(domainerrors.ErrEmailAlreadyExists)
		}

		return nil, errors.Wrap(domainerrors.ErrIdentityProviderFailed, err.Error())
	}

	agency := &entity.Agency{
		UID:         uid,
		Name:        input.Name,
		Email:       input.Email,
		Location:    input.Location,
		Phone:       input.Phone,
		Website:     input.Website,
		Description: input.Description,
		Approved:    false,
		CreatedAt:   s.now(),
	}

	if err := s.agencyRepo.Create(ctx, agency); err != nil {
		if delErr := s.identity.DeleteAccount(ctx, uid); delErr != nil && !errors.Is(delErr, service.ErrIdentityAccountNotFound) {
			log.Error("Failed to remove identity account after signup failure",
				slog.String("uid", uid),
				slog.Any("error", delErr),
			)
		}

		return nil, errors.Wrap(err, "failed to create agency record")
	}

	return agency, nil
}

func (s *agencyService) ListPending(ctx context.Context) ([]*entity.Agency, error) {
	approved := false
	agencies, err := s.agencyRepo.List(ctx, repository.AgencyFilter{Approved: &approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending agencies")
	}

	return agencies, nil
}

func (s *agencyService) ListApproved(ctx context.Context) ([]*entity.Agency, error) {
	approved := true
	agencies, err := s.agencyRepo.List(ctx, repository.AgencyFilter{Approved: &approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved agencies")
	}

	return agencies, nil
}

// GetApproved hides agencies that have not been approved.
func (s *agencyService) GetApproved(ctx context.Context, agencyID string) (*entity.Agency, error) {
	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAgencyNotFound)
		}

		return nil, errors.Wrap(err, "failed to find agency")
	}

	if !agency.Approved {
		return nil, errors.WithStack(domainerrors.ErrAgencyNotFound)
	}

	return agency, nil
}

// Decide applies an admin decision to a pending agency.
func (s *agencyService) Decide(ctx context.Context, agencyID string, decision entity.AgencyDecision) (*usecase.AgencyDecisionResult, error) {
	loggerFrom(ctx, s.logger).Info("Agency decision", slog.String("agency_id", agencyID), slog.String("decision", string(decision)))

	if !decision.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidDecision)
	}

	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAgencyNotFound)
		}

		return nil, errors.Wrap(err, "failed to find agency")
	}

	if decision == entity.AgencyRejected {
		// Approval is terminal; only a pending agency can be rejected.
		if agency.Approved {
			return nil, errors.WithStack(domainerrors.ErrAgencyAlreadyApproved)
		}

		if err := s.reject(ctx, agency); err != nil {
			return nil, err
		}

		return &usecase.AgencyDecisionResult{AgencyID: agencyID, Decision: decision}, nil
	}

	approved, err := s.approve(ctx, agency)
	if err != nil {
		return nil, err
	}

	return &usecase.AgencyDecisionResult{AgencyID: agencyID, Decision: decision, Agency: approved}, nil
}

// approve grants the role claim, records the role, then flags the agency approved.
// Every step is idempotent so a retry after a partial failure converges.
func (s *agencyService) approve(ctx context.Context, agency *entity.Agency) (*entity.Agency, error) {
	if err := s.identity.SetRole(ctx, agency.UID, entity.RoleAgency); err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityProviderFailed, err.Error())
	}

	if err := s.userRepo.SetRole(ctx, agency.UID, entity.RoleAgency, agency.Email); err != nil {
		return nil, errors.Wrap(err, "failed to record agency role")
	}

	wasApproved := false
	updated, err := s.agencyRepo.Update(ctx, agency.UID, func(a *entity.Agency) error {
		wasApproved = a.Approved
		if a.Approved {
			return nil
		}

		now := s.now()
		a.Approved = true
		a.ApprovedAt = &now
		a.UpdatedAt = &now

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAgencyNotFound)
		}

		return nil, errors.Wrap(err, "failed to approve agency")
	}

	if !wasApproved {
		enqueueNotification(ctx, s.notifier, s.logger, &entity.NotificationTask{
			Kind:          entity.NotificationAgencyApproved,
			Recipient:     updated.Email,
			RecipientName: updated.Name,
			TemplateParams: map[string]string{
				"agency_name": updated.Name,
			},
		})
	}

	return updated, nil
}

// reject removes the identity account first, then the record, so a failure
// part-way leaves the agency in the pending list for a retry.
func (s *agencyService) reject(ctx context.Context, agency *entity.Agency) error {
	if err := s.identity.DeleteAccount(ctx, agency.UID); err != nil && !errors.Is(err, service.ErrIdentityAccountNotFound) {
		return errors.Wrap(domainerrors.ErrIdentityProviderFailed, err.Error())
	}

	if err := s.agencyRepo.Delete(ctx, agency.UID); err != nil {
		return errors.Wrap(err, "failed to delete agency record")
	}

	return nil
}

// UpdateProfile patches the agency record and carries a name change over to its packages.
func (s *agencyService) UpdateProfile(ctx context.Context, agencyID string, input *usecase.UpdateAgencyProfileInput) (*entity.Agency, error) {
	log := loggerFrom(ctx, s.logger)
	log.Info("Updating agency profile", slog.String("agency_id", agencyID))

	nameChanged := false
	agency, err := s.agencyRepo.Update(ctx, agencyID, func(a *entity.Agency) error {
		if input.Name != nil && *input.Name != a.Name {
			a.Name = *input.Name
			nameChanged = true
		}
		if input.Location != nil {
			a.Location = *input.Location
		}
		if input.Logo != nil {
			a.Logo = *input.Logo
		}
		if input.Phone != nil {
			a.Phone = *input.Phone
		}
		if input.Website != nil {
			a.Website = *input.Website
		}
		if input.Description != nil {
			a.Description = *input.Description
		}

		now := s.now()
		a.UpdatedAt = &now

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAgencyNotFound)
		}

		return nil, errors.Wrap(err, "failed to update agency profile")
	}

	if nameChanged {
		s.renamePackages(ctx, agency)
	}

	return agency, nil
}

func (s *agencyService) renamePackages(ctx context.Context, agency *entity.Agency) {
	log := loggerFrom(ctx, s.logger)

	pkgs, err := s.packageRepo.List(ctx, repository.PackageFilter{AgencyID: agency.UID})
	if err != nil {
		log.Error("Failed to list packages for rename", slog.String("agency_id", agency.UID), slog.Any("error", err))

		return
	}

	for _, p := range pkgs {
		_, err := s.packageRepo.Update(ctx, p.PackageID, func(tp *entity.TourPackage) error {
			tp.AgencyName = agency.Name

			return nil
		})
		if err != nil {
			log.Error("Failed to rename package agency", slog.String("package_id", p.PackageID), slog.Any("error", err))
		}
	}
}
