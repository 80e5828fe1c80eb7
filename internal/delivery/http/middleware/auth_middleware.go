package middleware

import (
	"strings"

	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides the bearer-token gate for protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the Authorization header.
// A missing or empty token and an unverifiable token are distinct failures
// with distinct messages; both end the request with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// Attach the caller identity for handlers and downstream layers.
		c.Set(string(deliverycontext.KeyUserID), claims.UserID)
		c.Set(string(deliverycontext.KeyUsername), claims.Username)

		ctx := deliverycontext.WithIdentity(c.Request().Context(), claims.UserID, claims.Username)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
