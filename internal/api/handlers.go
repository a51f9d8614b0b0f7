package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell-backend/internal/auth"
)

// Health check
func (a *API) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getCurrentUser handles GET /auth/me
func (a *API) getCurrentUser(c echo.Context) error {
	principal := auth.PrincipalFromContext(c)
	if principal == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":       principal.User,
		"expires_at": principal.Session.ExpiresAt,
	})
}

// getUserSessions handles GET /auth/sessions
func (a *API) getUserSessions(c echo.Context) error {
	principal := auth.PrincipalFromContext(c)
	if principal == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	sessions, err := a.sessions.GetByUserID(c.Request().Context(), principal.User.ID)
	if err != nil {
		c.Logger().Error("list sessions error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list sessions",
		})
	}

	return c.JSON(http.StatusOK, sessions)
}
