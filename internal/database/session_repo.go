package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell-backend/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepo handles session database operations
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create inserts a session for a user. Session issuance itself (login)
// lives outside this service; this exists for tooling and tests.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) (*models.Session, error) {
	session := &models.Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (user_id, token, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.UserID, session.Token, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	session.ID = id

	return session, nil
}

// GetValidByToken retrieves the session for a token, but only if it has not
// expired as of now. The expiry filter runs inside the query so an expired
// row can never be returned, even if it is still physically present.
// Expiry is strict: a session whose expires_at equals now is already expired.
func (r *SessionRepo) GetValidByToken(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	session := &models.Session{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token, created_at, expires_at
		FROM sessions WHERE token = ? AND expires_at > ?
	`, token, now).Scan(
		&session.ID, &session.UserID, &session.Token,
		&session.CreatedAt, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetByUserID retrieves all sessions for a user, newest first
func (r *SessionRepo) GetByUserID(ctx context.Context, userID int64) ([]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, token, created_at, expires_at
		FROM sessions WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		err := rows.Scan(
			&session.ID, &session.UserID, &session.Token,
			&session.CreatedAt, &session.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// Delete deletes a session by ID
func (r *SessionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes all sessions that expired at or before now
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?", now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
