package repositories

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// CommunityReader defines read operations for community posts.
type CommunityReader interface {
	// FindPostByID retrieves a single post with its replies.
	FindPostByID(ctx context.Context, postID string) (*domain.CommunityPost, error)

	// ListPosts retrieves posts newest first, optionally filtered by category.
	ListPosts(ctx context.Context, category string, limit int) ([]domain.CommunityPost, error)
}

// CommunityWriter defines write operations for community posts.
type CommunityWriter interface {
	// SavePost persists a new post.
	SavePost(ctx context.Context, post domain.CommunityPost) error

	// AppendReply appends a reply to an existing post.
	AppendReply(ctx context.Context, postID string, reply domain.CommunityReply) error
}

// CommunityRepositoryFacade combines all community repository interfaces.
type CommunityRepositoryFacade interface {
	CommunityReader
	CommunityWriter
}
