package dto

import (
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// --- Community Board DTOs ---

// CreatePostRequest defines data for publishing a discussion post.
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// AddReplyRequest defines data for replying to a post.
type AddReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommunityReplyResponse mirrors an embedded reply.
type CommunityReplyResponse struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommunityPostResponse defines data returned for a post.
type CommunityPostResponse struct {
	PostID    string                   `json:"postId"`
	Author    string                   `json:"author"`
	Title     string                   `json:"title"`
	Content   string                   `json:"content"`
	Category  string                   `json:"category"`
	Replies   []CommunityReplyResponse `json:"replies"`
	CreatedAt time.Time                `json:"createdAt"`
}

// ToCommunityPostResponse converts domain.CommunityPost to DTO.
func ToCommunityPostResponse(p *domain.CommunityPost) CommunityPostResponse {
	replies := make([]CommunityReplyResponse, len(p.Replies))
	for i, r := range p.Replies {
		replies[i] = CommunityReplyResponse{Author: r.Author, Content: r.Content, CreatedAt: r.CreatedAt}
	}
	return CommunityPostResponse{
		PostID:    p.PostID,
		Author:    p.Author,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		Replies:   replies,
		CreatedAt: p.CreatedAt,
	}
}

// ListCommunityPostsResponse wraps a list of posts.
type ListCommunityPostsResponse struct {
	Posts []CommunityPostResponse `json:"posts"`
}

// ToListCommunityPostsResponse converts a slice of posts to DTO.
func ToListCommunityPostsResponse(ps []domain.CommunityPost) ListCommunityPostsResponse {
	list := make([]CommunityPostResponse, len(ps))
	for i, p := range ps {
		list[i] = ToCommunityPostResponse(&p)
	}
	return ListCommunityPostsResponse{Posts: list}
}
