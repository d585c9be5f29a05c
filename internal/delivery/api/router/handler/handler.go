// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"tripbook/internal/delivery/api/middleware"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/errors"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "status": "ok"})
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// actorOf returns the authenticated caller or ErrUnauthorized.
func actorOf(c echo.Context) (usecase.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

// scopedAgencyID is the agency an agency-scoped request acts on: the caller
// itself, or the agencyId query parameter when an admin asks.
func scopedAgencyID(c echo.Context, actor usecase.Actor) (string, error) {
	if actor.IsAdmin() {
		agencyID := c.QueryParam("agencyId")
		if agencyID == "" {
			return "", domainerrors.ErrValidationFailed.WithDetails("agencyId is required")
		}

		return agencyID, nil
	}

	return actor.UID, nil
}
