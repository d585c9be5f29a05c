package handler

import (
	"tripbook/internal/delivery/api/response"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// GetStats returns marketplace-wide counters.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminUC.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", stats)
}
