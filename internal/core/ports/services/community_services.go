package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// CommunitySvcFacade manages the discussion board.
type CommunitySvcFacade interface {
	// CreatePost publishes a new post by the author.
	CreatePost(ctx context.Context, author string, req dto.CreatePostRequest) (*domain.CommunityPost, error)

	// GetPost retrieves a post with its replies.
	GetPost(ctx context.Context, postID string) (*domain.CommunityPost, error)

	// ListPosts retrieves posts newest first, optionally filtered by category.
	ListPosts(ctx context.Context, category string, limit int) ([]domain.CommunityPost, error)

	// AddReply appends a reply by the author to an existing post.
	AddReply(ctx context.Context, postID, author, content string) (*domain.CommunityPost, error)
}
