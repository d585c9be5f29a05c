// Package payment adapts the Razorpay SDK to the PaymentGateway port.
package payment

import (
	"context"
	"log/slog"
	"time"

	"tripbook/config"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"

	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"
)

const defaultTimeout = 15 * time.Second

type gateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	currency  string
	logger    *slog.Logger
}

// NewGateway creates the PaymentGateway from the payment config section. An empty
// payment.baseUrl keeps the SDK's production host.
func NewGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	pc := cfg.Payment
	if pc == nil {
		return nil, errors.New("payment config section is required")
	}
	if pc.KeyID == "" || pc.KeySecret == "" {
		logger.Warn("Payment key pair is not configured; order creation will be rejected by the gateway")
	}

	timeout := pc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := razorpay.NewClient(pc.KeyID, pc.KeySecret)
	client.SetTimeout(int16(timeout / time.Second))
	if pc.BaseURL != "" {
		client.Request.BaseURL = pc.BaseURL
	}

	return &gateway{
		client:    client,
		keyID:     pc.KeyID,
		keySecret: pc.KeySecret,
		currency:  pc.Currency,
		logger:    logger,
	}, nil
}

func (g *gateway) Currency() string { return g.currency }

func (g *gateway) KeyID() string { return g.keyID }

// CreateOrder opens an order for amount minor units. The SDK call is not
// context aware, so only a context that is already done is honoured.
func (g *gateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*service.PaymentOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := g.client.Order.Create(map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "payment gateway request failed")
	}

	order := toPaymentOrder(body)
	if order.ID == "" {
		return nil, errors.New("payment gateway returned an order without id")
	}

	g.logger.Info("Payment order created",
		slog.String("order_id", order.ID),
		slog.Int64("amount", order.Amount),
		slog.String("currency", order.Currency),
	)

	return order, nil
}

// VerifySignature checks the checkout signature over orderID|paymentID.
func (g *gateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	return rzputils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, g.keySecret)
}

// toPaymentOrder reads the order fields from the SDK's decoded JSON.
func toPaymentOrder(body map[string]interface{}) *service.PaymentOrder {
	str := func(key string) string {
		s, _ := body[key].(string)

		return s
	}

	order := &service.PaymentOrder{
		ID:       str("id"),
		Currency: str("currency"),
		Receipt:  str("receipt"),
		Status:   str("status"),
	}
	// encoding/json decodes numbers into float64.
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}

	return order
}
