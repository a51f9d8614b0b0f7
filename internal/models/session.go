package models

import "time"

// Session represents an active login. A session authorizes requests only
// while the current time is strictly before ExpiresAt.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Principal is the authenticated identity resolved for a single request:
// the session that authorized it and the user owning that session.
// Constructed fresh per request, never cached.
type Principal struct {
	Session *Session
	User    *User
}
