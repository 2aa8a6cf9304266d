package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/service"
)

const actorKey = "actor"

// BearerToken extracts the token from Authorization, falling back to
// X-Authorization. ok is false when neither header holds a Bearer value.
func BearerToken(r *http.Request) (token string, ok bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		header = r.Header.Get("X-Authorization")
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// Auth resolves an optional bearer token into a *domain.Actor. Requests with
// no usable token continue as guests.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := BearerToken(c.Request()); ok {
				if claims, err := service.ParseToken(jwtSecret, token); err == nil {
					c.Set(actorKey, claims.Actor())
				}
			}
			return next(c)
		}
	}
}

// Actor returns the caller set by Auth, or nil for guests.
func Actor(c echo.Context) *domain.Actor {
	a, _ := c.Get(actorKey).(*domain.Actor)
	return a
}

// SetActor stores a caller on the context.
func SetActor(c echo.Context, a *domain.Actor) {
	c.Set(actorKey, a)
}
