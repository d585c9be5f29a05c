package usecase

import "context"

// PaymentUsecase defines payment order creation and verification.
type PaymentUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*OrderOutput, error)

	// VerifyPayment reports whether the gateway signature matches.
	VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (bool, error)
}

// CreateOrderInput defines the data required to open a payment order.
type CreateOrderInput struct {
	Amount   float64 `json:"amount" validate:"gt=0"` // Major currency units.
	Currency string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Receipt  string  `json:"receipt,omitempty" validate:"omitempty,max=40"`
}

// OrderOutput is returned to the checkout client.
type OrderOutput struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentInput carries the gateway callback values.
type VerifyPaymentInput struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}
