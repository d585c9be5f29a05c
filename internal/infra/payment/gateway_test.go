package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/config"
	"tripbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, baseURL string) service.PaymentGateway {
	t.Helper()

	gw, err := NewGateway(&config.Config{Payment: &config.PaymentConfig{
		BaseURL:   baseURL,
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
		Currency:  "INR",
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gw
}

// checkoutSignature is what the hosted checkout hands back to the client.
func checkoutSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestGateway_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 499900, req["amount"])
		assert.Equal(t, "rcpt_1", req["receipt"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "order_1", "amount": req["amount"], "currency": req["currency"], "receipt": req["receipt"], "status": "created",
		})
	}))
	defer srv.Close()

	order, err := newTestGateway(t, srv.URL).CreateOrder(context.Background(), 499900, "INR", "rcpt_1")

	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(499900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "created", order.Status)
}

func TestGateway_CreateOrder_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	_, err := newTestGateway(t, srv.URL).CreateOrder(context.Background(), 100, "INR", "r")

	require.Error(t, err)
}

func TestGateway_CreateOrder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGateway(t, "http://unused").CreateOrder(ctx, 100, "INR", "r")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGateway_VerifySignature(t *testing.T) {
	gw := newTestGateway(t, "http://unused")
	valid := checkoutSignature("secret", "order_1", "pay_1")

	assert.True(t, gw.VerifySignature("order_1", "pay_1", valid))
	assert.False(t, gw.VerifySignature("order_1", "pay_2", valid))
	assert.False(t, gw.VerifySignature("order_1", "pay_1", checkoutSignature("other", "order_1", "pay_1")))
	assert.False(t, gw.VerifySignature("", "", ""))
}

func TestToPaymentOrder(t *testing.T) {
	order := toPaymentOrder(map[string]interface{}{"id": "order_9", "amount": float64(1500), "status": "created"})

	assert.Equal(t, "order_9", order.ID)
	assert.Equal(t, int64(1500), order.Amount)
	assert.Empty(t, order.Currency)
}
