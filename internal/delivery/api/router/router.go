// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tripbook/internal/delivery/api/middleware"
	"tripbook/internal/delivery/api/router/handler"
	"tripbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AgencyHandler  *handler.AgencyHandler
	PackageHandler *handler.PackageHandler
	BookingHandler *handler.BookingHandler
	AdminHandler   *handler.AdminHandler
	ProfileHandler *handler.ProfileHandler
	PaymentHandler *handler.PaymentHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	agencyHandler  *handler.AgencyHandler
	packageHandler *handler.PackageHandler
	bookingHandler *handler.BookingHandler
	adminHandler   *handler.AdminHandler
	profileHandler *handler.ProfileHandler
	paymentHandler *handler.PaymentHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		agencyHandler:  params.AgencyHandler,
		packageHandler: params.PackageHandler,
		bookingHandler: params.BookingHandler,
		adminHandler:   params.AdminHandler,
		profileHandler: params.ProfileHandler,
		paymentHandler: params.PaymentHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	agencyOnly := r.authMiddleware.RequireRole(entity.RoleAgency)
	agencyOrAdmin := r.authMiddleware.RequireRole(entity.RoleAgency, entity.RoleAdmin)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/agency/signup", r.agencyHandler.Signup)
	api.GET("/agencies/approved", r.agencyHandler.ListApproved)
	api.GET("/packages", r.packageHandler.ListPackages)
	api.GET("/packages/:packageId", r.packageHandler.GetPackage)

	// Agency dashboard
	agencyGroup := api.Group("/agency", auth)
	{
		agencyGroup.PUT("/profile", r.agencyHandler.UpdateProfile, agencyOnly)
		agencyGroup.GET("/packages", r.packageHandler.ListAgencyPackages, agencyOrAdmin)
		agencyGroup.POST("/packages", r.packageHandler.CreatePackage, agencyOnly)
		agencyGroup.PUT("/packages/:packageId", r.packageHandler.UpdatePackage, agencyOnly)
		agencyGroup.DELETE("/packages/:packageId", r.packageHandler.DeletePackage, agencyOnly)
		agencyGroup.GET("/bookings", r.packageHandler.ListAgencyBookings, agencyOrAdmin)
		agencyGroup.GET("/summary", r.packageHandler.GetAgencySummary, agencyOrAdmin)
	}
	// Static agency paths take precedence over the parameter route.
	api.GET("/agency/:agencyId", r.agencyHandler.GetAgency)

	bookingGroup := api.Group("/bookings", auth)
	{
		bookingGroup.POST("/order", r.paymentHandler.CreateOrder)
		bookingGroup.POST("/verify-payment", r.paymentHandler.VerifyPayment)
		bookingGroup.POST("/create-booking", r.bookingHandler.CreateBooking)
		bookingGroup.POST("/cancel", r.bookingHandler.CancelBooking)
		bookingGroup.POST("/update", r.bookingHandler.UpdateBooking)
		bookingGroup.GET("/fetch-booking/:userId", r.bookingHandler.ListUserBookings)
		bookingGroup.GET("/:bookingId/ticket", r.bookingHandler.GetTicket)
	}

	adminAgencies := api.Group("/agencies", auth, adminOnly)
	{
		adminAgencies.GET("/fetch-agencies", r.agencyHandler.ListPending)
		adminAgencies.POST("/approve-agency", r.agencyHandler.Decide)
	}

	api.GET("/admin/stats", r.adminHandler.GetStats, auth, adminOnly)

	api.GET("/profile", r.profileHandler.GetProfile, auth)
	api.POST("/profile", r.profileHandler.UpsertProfile, auth)
	api.POST("/upload", r.mediaHandler.Upload, auth)
	api.POST("/assign-role", r.profileHandler.AssignRole, auth)
}
