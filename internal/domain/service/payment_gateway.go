package service

import "context"

// PaymentOrder is an order created at the payment gateway.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // Minor currency units.
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// PaymentGateway defines the interface for the external payment provider.
type PaymentGateway interface {
	// CreateOrder opens an order for amount minor units.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*PaymentOrder, error)

	// VerifySignature checks the gateway signature over an order and payment pair.
	VerifySignature(orderID, paymentID, signature string) bool

	// Currency returns the default currency for new orders.
	Currency() string

	// KeyID returns the public key id the checkout client needs.
	KeyID() string
}
