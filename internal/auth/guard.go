// Package auth gates protected routes behind bearer-token session
// validation. The guard resolves an Authorization header to the session
// and user behind it, or to one of four classified failures.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"inkwell-backend/internal/database"
	"inkwell-backend/internal/models"
)

var (
	// ErrMissingCredential indicates no Authorization header, or one that
	// does not carry a Bearer token.
	ErrMissingCredential = errors.New("missing or invalid authorization header")
	// ErrInvalidSession indicates the token matched no live session: either
	// unknown to the store or already expired.
	ErrInvalidSession = errors.New("invalid or expired session")
	// ErrPrincipalNotFound indicates a live session whose owning user no
	// longer exists. This is a data-integrity anomaly, not a bad credential.
	ErrPrincipalNotFound = errors.New("session user not found")
	// ErrStoreUnavailable indicates the store could not be reached. It is an
	// infrastructure failure and must never be reported as a credential one.
	ErrStoreUnavailable = errors.New("session store unavailable")
)

// SessionStore is the session lookup the guard depends on. The expiry
// filter is applied by the store: an expired session must never come back.
type SessionStore interface {
	GetValidByToken(ctx context.Context, token string, now time.Time) (*models.Session, error)
}

// UserStore resolves the user owning a session.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Guard validates incoming requests' session tokens. It is stateless
// across requests; each authentication re-validates against the store.
type Guard struct {
	sessions SessionStore
	users    UserStore
	now      func() time.Time
}

// NewGuard creates a guard over the given stores
func NewGuard(sessions SessionStore, users UserStore) *Guard {
	return &Guard{
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}
}

// AuthenticateRequest extracts the bearer token from the request and
// resolves it. The request context bounds both store lookups.
func (g *Guard) AuthenticateRequest(r *http.Request) (*models.Principal, error) {
	token, ok := BearerToken(r.Header)
	if !ok {
		return nil, ErrMissingCredential
	}
	return g.Resolve(r.Context(), token)
}

// Resolve performs the two-stage lookup: session by token, then user by
// the session's owner id. Store "not found" results map to the credential
// error kinds; anything else from the store surfaces as ErrStoreUnavailable.
func (g *Guard) Resolve(ctx context.Context, token string) (*models.Principal, error) {
	session, err := g.sessions.GetValidByToken(ctx, token, g.now())
	if errors.Is(err, database.ErrSessionNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	user, err := g.users.GetByID(ctx, session.UserID)
	if errors.Is(err, database.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: session %d references user %d", ErrPrincipalNotFound, session.ID, session.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &models.Principal{Session: session, User: user}, nil
}
