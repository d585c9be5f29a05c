package handler

import (
	"log/slog"

	"tripbook/internal/delivery/api/response"
	"tripbook/internal/domain/entity"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AgencyHandlerParams holds dependencies for AgencyHandler, injected by Fx.
type AgencyHandlerParams struct {
	fx.In

	AgencyUC usecase.AgencyUsecase
	Logger   *slog.Logger
}

// AgencyHandler serves agency signup, the public directory and the approval workflow.
type AgencyHandler struct {
	agencyUC usecase.AgencyUsecase
	logger   *slog.Logger
}

// NewAgencyHandler is the constructor for AgencyHandler
func NewAgencyHandler(params AgencyHandlerParams) *AgencyHandler {
	return &AgencyHandler{
		agencyUC: params.AgencyUC,
		logger:   params.Logger,
	}
}

// DecideAgencyRequest is the body of the approval endpoint.
type DecideAgencyRequest struct {
	AgencyID string                `json:"agencyId" validate:"required"`
	Decision entity.AgencyDecision `json:"decision" validate:"required,oneof=approved rejected"`
}

// Signup registers a new agency awaiting approval.
func (h *AgencyHandler) Signup(c echo.Context) error {
	var req usecase.AgencySignupInput
	if err := bind(c, &req); err != nil {
		return err
	}

	agency, err := h.agencyUC.SubmitSignup(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "Agency signup submitted, awaiting approval", agency)
}

// GetAgency returns one approved agency.
func (h *AgencyHandler) GetAgency(c echo.Context) error {
	agency, err := h.agencyUC.GetApproved(c.Request().Context(), c.Param("agencyId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", agency)
}

// ListApproved returns the public agency directory.
func (h *AgencyHandler) ListApproved(c echo.Context) error {
	agencies, err := h.agencyUC.ListApproved(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", agencies)
}

// UpdateProfile patches the caller's agency record.
func (h *AgencyHandler) UpdateProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateAgencyProfileInput
	if err := bind(c, &req); err != nil {
		return err
	}

	agency, err := h.agencyUC.UpdateProfile(c.Request().Context(), actor.UID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Agency profile updated", agency)
}

// ListPending returns agencies awaiting a decision. Admin only.
func (h *AgencyHandler) ListPending(c echo.Context) error {
	agencies, err := h.agencyUC.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", agencies)
}

// Decide approves or rejects a pending agency. Admin only.
func (h *AgencyHandler) Decide(c echo.Context) error {
	var req DecideAgencyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.agencyUC.Decide(c.Request().Context(), req.AgencyID, req.Decision)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Agency "+string(req.Decision), result)
}
