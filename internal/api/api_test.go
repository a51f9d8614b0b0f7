package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-backend/internal/auth"
	"inkwell-backend/internal/database"
	"inkwell-backend/internal/models"
)

type testEnv struct {
	e        *echo.Echo
	db       *sql.DB
	users    *database.UserRepo
	sessions *database.SessionRepo
	posts    *database.PostRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := database.NewUserRepo(db)
	sessions := database.NewSessionRepo(db)
	posts := database.NewPostRepo(db)
	guard := auth.NewGuard(sessions, users)

	e := echo.New()
	New(guard, users, sessions, posts).RegisterRoutes(e)

	return &testEnv{e: e, db: db, users: users, sessions: sessions, posts: posts}
}

func (env *testEnv) seedUserWithSession(t *testing.T, username, token string, expiresAt time.Time) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, env.users.Create(context.Background(), user))
	_, err := env.sessions.Create(context.Background(), user.ID, token, expiresAt)
	require.NoError(t, err)
	return user
}

func (env *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreatePostAuthenticated(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUserWithSession(t, "alice", "abc123", time.Now().Add(time.Hour))

	rec := env.do(http.MethodPost, "/posts", "Bearer abc123", `{"title":"hello","content":"world"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, alice.ID, post.UserID)
	assert.Equal(t, "hello", post.Title)

	// The post shows up in both listings.
	rec = env.do(http.MethodGet, "/posts", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, post.ID, listed[0].ID)

	rec = env.do(http.MethodGet, "/users/"+strconv.FormatInt(alice.ID, 10)+"/posts", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
}

func TestCreatePostUnauthenticated(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		token    string
		wantBody string
	}{
		{"no header", "", "Missing or invalid Authorization header"},
		{"wrong scheme", "Basic abc123", "Missing or invalid Authorization header"},
		{"unknown token", "Bearer nope", "Invalid or expired session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/posts", tt.token, `{"title":"x","content":"y"}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}

	// Nothing was created.
	rec := env.do(http.MethodGet, "/posts", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestCreatePostExpiredSession(t *testing.T) {
	env := newTestEnv(t)
	env.seedUserWithSession(t, "alice", "expired-token", time.Now().Add(-time.Minute))

	rec := env.do(http.MethodPost, "/posts", "Bearer expired-token", `{"title":"x","content":"y"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired session", rec.Body.String())
}

func TestCreatePostOrphanedSession(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUserWithSession(t, "alice", "abc123", time.Now().Add(time.Hour))

	// Break the session/user link. Deleting the user would cascade the
	// session away, so point the session at a user id that never existed,
	// with FK enforcement off for this one connection.
	ctx := context.Background()
	conn, err := env.db.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, "UPDATE sessions SET user_id = ? WHERE token = ?", alice.ID+1000, "abc123")
	require.NoError(t, err)

	rec := env.do(http.MethodPost, "/posts", "Bearer abc123", `{"title":"x","content":"y"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not found", rec.Body.String())
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	env.seedUserWithSession(t, "alice", "abc123", time.Now().Add(time.Hour))

	rec := env.do(http.MethodPost, "/posts", "Bearer abc123", `{"title":"","content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUserWithSession(t, "alice", "abc123", time.Now().Add(time.Hour))

	rec := env.do(http.MethodGet, "/auth/me", "Bearer abc123", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, alice.ID, resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)

	rec = env.do(http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserSessions(t *testing.T) {
	env := newTestEnv(t)
	env.seedUserWithSession(t, "alice", "abc123", time.Now().Add(time.Hour))

	rec := env.do(http.MethodGet, "/auth/sessions", "Bearer abc123", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
	require.Len(t, sessions, 1)
}

func TestListUserPostsInvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/users/abc/posts", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenAPIDoc(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/openapi.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc, "paths")
}

