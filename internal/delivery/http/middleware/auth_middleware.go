// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	deliverycontext "compssa/internal/delivery/context"
	"compssa/internal/domain/entity"
	domainerrors "compssa/internal/domain/errors"
	"compssa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests and enforces role requirements.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and resolves it to the live account
// row. Handlers downstream read the account from the request context; its role
// and active flag reflect storage at request time, not token-issue time.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenMissing.WithDetails("expected a Bearer token")
		}

		account, err := m.authUC.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyAccount), account)

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to one role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := AccountFromContext(c)
			if account == nil {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if account.Role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("requires " + requiredRole.String() + " role")
			}

			return next(c)
		}
	}
}

// AccountFromContext returns the authenticated account set by Authenticate,
// or nil when the request is unauthenticated.
func AccountFromContext(c echo.Context) *entity.Account {
	if account, ok := c.Get(string(deliverycontext.KeyAccount)).(*entity.Account); ok {
		return account
	}

	return nil
}
