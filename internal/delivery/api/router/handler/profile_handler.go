package handler

import (
	"log/slog"

	"tripbook/internal/delivery/api/response"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile and role endpoints.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the caller's stored profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), actor.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", user)
}

// UpsertProfile creates or merges the caller's profile.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req usecase.UpsertProfileInput
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpsertProfile(c.Request().Context(), actor, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Profile saved", user)
}

// AssignRole sets the role of the caller or, for admins, of any account.
func (h *ProfileHandler) AssignRole(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req usecase.AssignRoleInput
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.profileUC.AssignRole(c.Request().Context(), actor, &req); err != nil {
		return errors.WithStack(err)
	}

	uid := req.UID
	if uid == "" {
		uid = actor.UID
	}

	return response.OK(c, "Role assigned", map[string]string{"uid": uid, "role": req.Role.String()})
}
