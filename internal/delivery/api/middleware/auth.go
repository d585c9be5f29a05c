package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"tripbook/internal/delivery/api/response"
	deliverycontext "tripbook/internal/delivery/context"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// AuthMiddleware verifies identity-provider bearer tokens and enforces roles.
type AuthMiddleware struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, logger: logger}
}

// Authenticate validates the ID token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		token, err := m.identity.VerifyIDToken(ctx, tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("ID token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetActor(c, usecase.Actor{UID: token.UID, Email: token.Email, Role: token.Role})

		return next(c)
	}
}

// RequireRole checks that the caller holds one of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if !slices.Contains(roles, actor.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated caller set by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(usecase.Actor)

	return actor, ok
}

// SetActor stores the caller on the context.
func SetActor(c echo.Context, actor usecase.Actor) {
	c.Set(actorKey, actor)
}
