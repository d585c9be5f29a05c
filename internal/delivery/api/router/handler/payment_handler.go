package handler

import (
	"net/http"

	"tripbook/internal/delivery/api/response"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler serves payment order endpoints.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(paymentUC usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// CreateOrder opens a gateway order for checkout.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req usecase.CreateOrderInput
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.paymentUC.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Order created", order)
}

// VerifyPayment checks the gateway signature of a completed payment.
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	var req usecase.VerifyPaymentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	ok, err := h.paymentUC.VerifyPayment(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return domainerrors.ErrPaymentSignatureInvalid
	}

	return response.OK(c, "Payment verified", map[string]any{"verified": true, "orderId": req.OrderID, "paymentId": req.PaymentID})
}
