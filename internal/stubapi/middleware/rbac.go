package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// RBAC lets through authenticated callers whose role is in allowedRoles.
// Guests get domain.ErrUnauthenticated, other roles domain.ErrForbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := Actor(c)
			if actor == nil {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[actor.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
