package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell-backend/internal/models"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepo handles post database operations
type PostRepo struct {
	db *sql.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create creates a new post owned by the given user
func (r *PostRepo) Create(ctx context.Context, userID int64, title, content string) (*models.Post, error) {
	post := &models.Post{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (user_id, title, content, created_at)
		VALUES (?, ?, ?, ?)
	`, post.UserID, post.Title, post.Content, post.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	post.ID = id

	return post, nil
}

// List retrieves all posts, newest first
func (r *PostRepo) List(ctx context.Context) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, created_at
		FROM posts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListByUser retrieves all posts by a user, newest first
func (r *PostRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, created_at
		FROM posts WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
