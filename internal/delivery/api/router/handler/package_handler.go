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

// PackageHandlerParams holds dependencies for PackageHandler, injected by Fx.
type PackageHandlerParams struct {
	fx.In

	PackageUC usecase.PackageUsecase
	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// PackageHandler serves the agency dashboard and the public catalogue.
type PackageHandler struct {
	packageUC usecase.PackageUsecase
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{
		packageUC: params.PackageUC,
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreatePackage adds a package for the calling agency.
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req usecase.CreatePackageInput
	if err := bind(c, &req); err != nil {
		return err
	}

	pkg, err := h.packageUC.CreatePackage(c.Request().Context(), actor.UID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Package created", pkg)
}

// UpdatePackage patches a package owned by the calling agency.
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req usecase.UpdatePackageInput
	if err := bind(c, &req); err != nil {
		return err
	}

	pkg, err := h.packageUC.UpdatePackage(c.Request().Context(), actor.UID, c.Param("packageId"), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Package updated", pkg)
}

// DeletePackage deactivates a package owned by the calling agency.
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	packageID := c.Param("packageId")
	if err := h.packageUC.DeletePackage(c.Request().Context(), actor.UID, packageID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Package deleted", map[string]string{"packageId": packageID})
}

// ListAgencyPackages returns packages with booking statistics.
func (h *PackageHandler) ListAgencyPackages(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	agencyID, err := scopedAgencyID(c, actor)
	if err != nil {
		return err
	}

	pkgs, err := h.packageUC.ListAgencyPackages(c.Request().Context(), agencyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", pkgs)
}

// ListAgencyBookings returns the bookings of the agency's packages.
func (h *PackageHandler) ListAgencyBookings(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	agencyID, err := scopedAgencyID(c, actor)
	if err != nil {
		return err
	}

	bookings, err := h.bookingUC.ListAgencyBookings(c.Request().Context(), agencyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", bookings)
}

// GetAgencySummary returns dashboard totals for the agency.
func (h *PackageHandler) GetAgencySummary(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	agencyID, err := scopedAgencyID(c, actor)
	if err != nil {
		return err
	}

	summary, err := h.packageUC.GetAgencySummary(c.Request().Context(), agencyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", summary)
}

// ListPackages is the public catalogue, optionally filtered by ?destination=.
func (h *PackageHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.packageUC.ListActivePackages(c.Request().Context(), c.QueryParam("destination"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", pkgs)
}

// GetPackage returns one public package.
func (h *PackageHandler) GetPackage(c echo.Context) error {
	pkg, err := h.packageUC.GetPackage(c.Request().Context(), c.Param("packageId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "", pkg)
}
