package middleware

import (
	"log/slog"
	"strings"

	"commerce/internal/delivery/api/response"
	deliverycontext "commerce/internal/delivery/context"
	"commerce/internal/domain/entity"
	"commerce/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		if ok := m.authenticate(c, authHeader); !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuth identifies the user when a bearer token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		if ok := m.authenticate(c, authHeader); !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, authHeader string) bool {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Rejected access token", slog.Any("error", err))

		return false
	}

	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, claims.Roles)

	return true
}

// RequireRole rejects requests whose token lacks role. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if !role.GrantedBy(roles) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}

// GetSessionToken returns the guest cart token sent by the client.
func GetSessionToken(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXSessionToken))
}

// ResolveCartOwner picks the cart an anonymous or authenticated caller acts on:
// the user's cart when authenticated, otherwise the guest session cart.
func ResolveCartOwner(c echo.Context) (entity.CartOwner, bool) {
	if userID, ok := GetUserID(c); ok {
		return entity.UserOwner(userID), true
	}

	owner := entity.SessionOwner(GetSessionToken(c))

	return owner, owner.IsValid()
}
