package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/repository"
	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BookingServiceParams holds dependencies for the booking service, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	PackageRepo repository.PackageRepository
	Payment     service.PaymentGateway
	QRCode      service.QRCodeService
	Notifier    usecase.NotificationUsecase
	Logger      *slog.Logger
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	payment     service.PaymentGateway
	qrcode      service.QRCodeService
	notifier    usecase.NotificationUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: params.BookingRepo,
		packageRepo: params.PackageRepo,
		payment:     params.Payment,
		qrcode:      params.QRCode,
		notifier:    params.Notifier,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// CreateBooking records a paid booking as confirmed.
func (s *bookingService) CreateBooking(ctx context.Context, actor usecase.Actor, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	log := loggerFrom(ctx, s.logger)
	log.Info("Creating booking", slog.String("booking_id", input.BookingID), slog.String("user_id", actor.UID))

	if input.PaymentSignature != "" && !s.payment.VerifySignature(input.OrderID, input.PaymentID, input.PaymentSignature) {
		return nil, errors.WithStack(domainerrors.ErrPaymentSignatureInvalid)
	}

	pkg, err := s.packageRepo.FindByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPackageNotFound)
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	if !pkg.IsOwnedBy(input.AgencyID) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("agencyId does not match the package"))
	}

	destination := input.Destination
	if destination == "" {
		destination = pkg.Destination
	}

	booking := &entity.Booking{
		BookingID:         input.BookingID,
		FullName:          input.FullName,
		Email:             input.Email,
		PhoneNumber:       input.PhoneNumber,
		Destination:       destination,
		NumberOfTravelers: input.NumberOfTravelers,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Accommodation:     input.Accommodation,
		Transportation:    input.Transportation,
		SpecialRequests:   input.SpecialRequests,
		Status:            entity.BookingConfirmed,
		UserID:            actor.UID,
		PackageID:         input.PackageID,
		AgencyID:          input.AgencyID,
		PaymentID:         input.PaymentID,
		OrderID:           input.OrderID,
		Amount:            input.Amount,
		CreatedAt:         s.now(),
	}

	err = s.bookingRepo.Upsert(ctx, booking, func(existing *entity.Booking) error {
		return checkResubmission(existing, actor)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrBookingOwnershipViolation) || errors.Is(err, domainerrors.ErrBookingCancelled) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to save booking")
	}

	enqueueNotification(ctx, s.notifier, s.logger, &entity.NotificationTask{
		Kind:           entity.NotificationBookingConfirmed,
		Recipient:      booking.Email,
		RecipientName:  booking.FullName,
		TemplateParams: bookingTemplateParams(booking, pkg.Title),
	})

	return booking, nil
}

// checkResubmission lets only the original customer re-submit a booking id, and
// never after it was cancelled.
func checkResubmission(existing *entity.Booking, actor usecase.Actor) error {
	if existing.UserID != actor.UID {
		return errors.WithStack(domainerrors.ErrBookingOwnershipViolation)
	}
	if existing.IsCancelled() {
		return errors.WithStack(domainerrors.ErrBookingCancelled)
	}

	return nil
}

// CancelBooking cancels a booking the caller has access to.
func (s *bookingService) CancelBooking(ctx context.Context, actor usecase.Actor, bookingID string) (*entity.Booking, error) {
	log := loggerFrom(ctx, s.logger)
	log.Info("Cancelling booking", slog.String("booking_id", bookingID), slog.String("caller", actor.UID))

	alreadyCancelled := false
	booking, err := s.bookingRepo.Update(ctx, bookingID, func(b *entity.Booking) error {
		if !b.CanBeAccessedBy(actor.UID, actor.Role) {
			return errors.WithStack(domainerrors.ErrBookingOwnershipViolation)
		}

		alreadyCancelled = b.IsCancelled()
		b.Cancel(s.now())

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBookingNotFound)
		}

		return nil, errors.Wrap(err, "failed to cancel booking")
	}

	if alreadyCancelled {
		log.Debug("Booking was already cancelled", slog.String("booking_id", bookingID))

		return booking, nil
	}

	enqueueNotification(ctx, s.notifier, s.logger, &entity.NotificationTask{
		Kind:           entity.NotificationBookingCancelled,
		Recipient:      booking.Email,
		RecipientName:  booking.FullName,
		TemplateParams: bookingTemplateParams(booking, ""),
	})

	return booking, nil
}

// UpdateBooking applies a typed patch.
func (s *bookingService) UpdateBooking(ctx context.Context, actor usecase.Actor, bookingID string, patch *usecase.UpdateBookingInput) (*entity.Booking, error) {
	loggerFrom(ctx, s.logger).Info("Updating booking", slog.String("booking_id", bookingID))

	if patch == nil || patch.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("no fields to update"))
	}

	booking, err := s.bookingRepo.Update(ctx, bookingID, func(b *entity.Booking) error {
		if !b.CanBeAccessedBy(actor.UID, actor.Role) {
			return errors.WithStack(domainerrors.ErrBookingOwnershipViolation)
		}
		if b.IsCancelled() {
			return errors.WithStack(domainerrors.ErrBookingCancelled)
		}

		applyBookingPatch(b, patch)
		now := s.now()
		b.UpdatedAt = &now

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBookingNotFound)
		}

		return nil, errors.Wrap(err, "failed to update booking")
	}

	return booking, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, actor usecase.Actor, userID string) ([]*entity.Booking, error) {
	if actor.UID != userID && !actor.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	bookings, err := s.bookingRepo.List(ctx, repository.BookingFilter{UserID: userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user bookings")
	}

	return bookings, nil
}

func (s *bookingService) ListAgencyBookings(ctx context.Context, agencyID string) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, repository.BookingFilter{AgencyID: agencyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agency bookings")
	}

	return bookings, nil
}

// GetTicket renders the booking's QR code e-ticket.
func (s *bookingService) GetTicket(ctx context.Context, actor usecase.Actor, bookingID string) ([]byte, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBookingNotFound)
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	if !booking.CanBeAccessedBy(actor.UID, actor.Role) {
		return nil, errors.WithStack(domainerrors.ErrBookingOwnershipViolation)
	}

	png, err := s.qrcode.GenerateBookingTicket(booking)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ticket")
	}

	return png, nil
}

func applyBookingPatch(b *entity.Booking, p *usecase.UpdateBookingInput) {
	if p.FullName != nil {
		b.FullName = *p.FullName
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		b.PhoneNumber = *p.PhoneNumber
	}
	if p.NumberOfTravelers != nil {
		b.NumberOfTravelers = *p.NumberOfTravelers
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.Accommodation != nil {
		b.Accommodation = *p.Accommodation
	}
	if p.Transportation != nil {
		b.Transportation = *p.Transportation
	}
	if p.SpecialRequests != nil {
		b.SpecialRequests = *p.SpecialRequests
	}
}

func bookingTemplateParams(b *entity.Booking, packageTitle string) map[string]string {
	params := map[string]string{
		"booking_id":  b.BookingID,
		"destination": b.Destination,
		"start_date":  b.StartDate,
		"end_date":    b.EndDate,
		"travelers":   strconv.Itoa(b.Travelers()),
		"amount":      strconv.FormatFloat(b.Amount, 'f', 2, 64),
		"status":      string(b.Status),
	}
	if packageTitle != "" {
		params["package_title"] = packageTitle
	}

	return params
}
