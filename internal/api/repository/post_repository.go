package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"parkpost/internal/api/models"
)

// PostRepository persists authored posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) (int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
}

type sqlitePostRepository struct {
	db *sqlx.DB
}

// NewPostRepository creates a new SQLite-based PostRepository.
func NewPostRepository(db *sqlx.DB) PostRepository {
	return &sqlitePostRepository{db: db}
}

// CreatePost inserts a post and returns the assigned id. AuthorID must
// already carry the session identity; this layer does not second-guess it.
func (r *sqlitePostRepository) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	query := `INSERT INTO posts (title, body, authorid, created_date) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, post.Title, post.Body, post.AuthorID, post.CreatedDate)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new post id: %w", err)
	}
	return id, nil
}

// GetPostByID retrieves a post by id, or nil, nil when it doesn't exist.
func (r *sqlitePostRepository) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	query := `SELECT id, created_date, title, body, authorid FROM posts WHERE id = ?`
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return &post, nil
}
