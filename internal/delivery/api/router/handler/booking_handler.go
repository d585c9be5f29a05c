package handler

import (
	"log/slog"
	"net/http"

	"tripbook/internal/delivery/api/response"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CancelBookingRequest is the body of the cancel endpoint.
type CancelBookingRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
}

// UpdateBookingRequest is the body of the update endpoint.
// Unknown keys inside updates are rejected by the binder.
type UpdateBookingRequest struct {
	BookingID string                      `json:"bookingId" validate:"required"`
	Updates   *usecase.UpdateBookingInput `json:"updates" validate:"required"`
}

// CreateBooking records a paid booking for the caller.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req usecase.CreateBookingInput
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), actor, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Booking confirmed", booking)
}

// CancelBooking cancels a booking the caller may act on.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req CancelBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), actor, req.BookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Booking cancelled", booking)
}

// UpdateBooking applies a typed patch to a booking.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req UpdateBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.UpdateBooking(c.Request().Context(), actor, req.BookingID, req.Updates)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Booking updated", booking)
}

// ListUserBookings returns a user's bookings, newest first.
func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingUC.ListUserBookings(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", bookings)
}

// GetTicket streams the QR code e-ticket as PNG.
func (h *BookingHandler) GetTicket(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	png, err := h.bookingUC.GetTicket(c.Request().Context(), actor, c.Param("bookingId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
