package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell-backend/internal/models"
)

// ContextKeyPrincipal is the echo context key the resolved principal is
// stored under for downstream handlers.
const ContextKeyPrincipal = "principal"

// RequireAuth runs the guard before the handler. On failure it writes the
// response itself and the handler is never invoked. The three credential
// failures all surface as 401 with short plain-text bodies; a store outage
// surfaces as 503 because it is not a credential problem.
func RequireAuth(g *Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := g.AuthenticateRequest(c.Request())
			if err != nil {
				return respondAuthFailure(c, err)
			}

			c.Set(ContextKeyPrincipal, principal)

			return next(c)
		}
	}
}

// OptionalAuth attaches a principal when the request carries a valid
// session but lets unauthenticated requests through. A store outage still
// fails the request rather than silently downgrading it to anonymous.
func OptionalAuth(g *Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := g.AuthenticateRequest(c.Request())
			if err == nil {
				c.Set(ContextKeyPrincipal, principal)
			} else if errors.Is(err, ErrStoreUnavailable) {
				return respondAuthFailure(c, err)
			}
			return next(c)
		}
	}
}

func respondAuthFailure(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return c.String(http.StatusUnauthorized, "Missing or invalid Authorization header")
	case errors.Is(err, ErrInvalidSession):
		return c.String(http.StatusUnauthorized, "Invalid or expired session")
	case errors.Is(err, ErrPrincipalNotFound):
		// Referential inconsistency between sessions and users. Kept
		// distinct in diagnostics, collapsed to the same status on the wire.
		c.Logger().Error("auth integrity anomaly: ", err)
		return c.String(http.StatusUnauthorized, "User not found")
	default:
		c.Logger().Error("auth store error: ", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "authentication backend unavailable",
		})
	}
}

// PrincipalFromContext retrieves the authenticated principal set by
// RequireAuth, or nil if the request was not authenticated.
func PrincipalFromContext(c echo.Context) *models.Principal {
	principal, ok := c.Get(ContextKeyPrincipal).(*models.Principal)
	if !ok {
		return nil
	}
	return principal
}
