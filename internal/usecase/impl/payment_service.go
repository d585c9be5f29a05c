package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type paymentService struct {
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentService creates the payment use case.
func NewPaymentService(gateway service.PaymentGateway, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateOrder opens a gateway order for the amount in minor units.
func (s *paymentService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.OrderOutput, error) {
	minor := int64(math.Round(input.Amount * 100))
	if minor <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("amount must be positive"))
	}

	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = s.gateway.Currency()
	}

	receipt := input.Receipt
	if receipt == "" {
		receipt = "rcpt_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
	}

	order, err := s.gateway.CreateOrder(ctx, minor, currency, receipt)
	if err != nil {
		loggerFrom(ctx, s.logger).Error("Payment order creation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentGatewayFailed, err.Error())
	}

	return &usecase.OrderOutput{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, input *usecase.VerifyPaymentInput) (bool, error) {
	ok := s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature)
	if !ok {
		loggerFrom(ctx, s.logger).Warn("Payment signature mismatch", slog.String("order_id", input.OrderID))
	}

	return ok, nil
}
