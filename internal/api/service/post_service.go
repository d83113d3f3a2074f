package service

import (
	"context"
	"time"

	"parkpost/internal/api/models"
	"parkpost/internal/api/repository"
	"parkpost/internal/auth"
	"parkpost/internal/sanitize"
)

const (
	msgTitleRequired = "You must provide a title."
	msgBodyRequired  = "You must provide content."
)

// PostService implements the create-post flow.
type PostService interface {
	CreatePost(ctx context.Context, identity *auth.Identity, req *models.PostRequest) (*models.Post, []string, error)
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost strips markup from the form fields, validates what is left
// and inserts the post stamped with the session identity. The request
// never chooses its own author. The created row is read back so callers
// see exactly what was stored.
func (s *postService) CreatePost(ctx context.Context, identity *auth.Identity, req *models.PostRequest) (*models.Post, []string, error) {
	title := sanitize.Strip(req.Title)
	body := sanitize.Strip(req.Body)

	var errs []string
	if title == "" {
		errs = append(errs, msgTitleRequired)
	}
	if body == "" {
		errs = append(errs, msgBodyRequired)
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	post := &models.Post{
		CreatedDate: time.Now().UTC().Format(time.RFC3339),
		Title:       title,
		Body:        body,
		AuthorID:    identity.UserID,
	}
	id, err := s.postRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, nil, err
	}

	created, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}
