package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"inkwell-backend/internal/auth"
)

// CreatePostRequest is the body for POST /posts
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// listPosts handles GET /posts
func (a *API) listPosts(c echo.Context) error {
	posts, err := a.posts.List(c.Request().Context())
	if err != nil {
		c.Logger().Error("list posts error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list posts",
		})
	}

	return c.JSON(http.StatusOK, posts)
}

// createPost handles POST /posts. The author is always the authenticated
// principal; the body carries no user id.
func (a *API) createPost(c echo.Context) error {
	principal := auth.PrincipalFromContext(c)
	if principal == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "title and content are required",
		})
	}

	post, err := a.posts.Create(c.Request().Context(), principal.User.ID, req.Title, req.Content)
	if err != nil {
		c.Logger().Error("create post error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create post",
		})
	}

	return c.JSON(http.StatusCreated, post)
}

// listUserPosts handles GET /users/:id/posts
func (a *API) listUserPosts(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid user id",
		})
	}

	posts, err := a.posts.ListByUser(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Error("list user posts error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list user posts",
		})
	}

	return c.JSON(http.StatusOK, posts)
}
