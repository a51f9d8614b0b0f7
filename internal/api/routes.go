package api

import (
	"github.com/labstack/echo/v4"

	"inkwell-backend/internal/auth"
	"inkwell-backend/internal/database"
)

// API carries the dependencies the handlers need. Everything is injected
// explicitly so handlers stay testable against fake or throwaway stores.
type API struct {
	guard    *auth.Guard
	users    *database.UserRepo
	sessions *database.SessionRepo
	posts    *database.PostRepo
}

// New creates the API handler set
func New(guard *auth.Guard, users *database.UserRepo, sessions *database.SessionRepo, posts *database.PostRepo) *API {
	return &API{
		guard:    guard,
		users:    users,
		sessions: sessions,
		posts:    posts,
	}
}

// RegisterRoutes sets up all routes
func (a *API) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.GET("/health", a.healthCheck)
	e.GET("/posts", a.listPosts)
	e.GET("/users/:id/posts", a.listUserPosts)
	e.GET("/openapi.json", a.openapiDoc)

	// Protected routes: the guard runs to completion before any handler
	// below executes, and a guard failure skips the handler entirely.
	requireAuth := auth.RequireAuth(a.guard)
	e.POST("/posts", a.createPost, requireAuth)

	authGroup := e.Group("/auth")
	authGroup.Use(requireAuth)
	authGroup.GET("/me", a.getCurrentUser)
	authGroup.GET("/sessions", a.getUserSessions)
}
