package middleware

import (
	"strings"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/delivery/http/response"
	"eats/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for owner token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the owner on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		owner, err := claims.Owner()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid owner ID in token")
		}

		deliverycontext.SetOwner(c, owner)

		return next(c)
	}
}

// RequireRestaurantAccess checks the :id path parameter against the owner's restaurants.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRestaurantAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner := deliverycontext.GetOwner(c)
		if owner == nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Owner information missing")
		}

		if !owner.CanManage(c.Param("id")) {
			return response.Forbidden(c, "FORBIDDEN", "You do not manage this restaurant")
		}

		return next(c)
	}
}
