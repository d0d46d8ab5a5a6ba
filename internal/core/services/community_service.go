package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

const defaultPostLimit = 50

// communityService manages the discussion board.
type communityService struct {
	BaseService
	repo portsrepo.CommunityRepositoryFacade
}

// NewCommunityService creates a new community service.
func NewCommunityService(repo portsrepo.CommunityRepositoryFacade) portssvc.CommunitySvcFacade {
	return &communityService{repo: repo}
}

var _ portssvc.CommunitySvcFacade = (*communityService)(nil)

func (s *communityService) CreatePost(ctx context.Context, author string, req dto.CreatePostRequest) (*domain.CommunityPost, error) {
	post := domain.CommunityPost{
		PostID:    uuid.NewString(),
		Author:    author,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Replies:   []domain.CommunityReply{},
		CreatedAt: time.Now(),
	}
	if err := s.repo.SavePost(ctx, post); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "community post created", "post_id", post.PostID, "author", author)
	return &post, nil
}

func (s *communityService) GetPost(ctx context.Context, postID string) (*domain.CommunityPost, error) {
	return s.repo.FindPostByID(ctx, postID)
}

func (s *communityService) ListPosts(ctx context.Context, category string, limit int) ([]domain.CommunityPost, error) {
	if limit <= 0 {
		limit = defaultPostLimit
	}
	return s.repo.ListPosts(ctx, category, limit)
}

func (s *communityService) AddReply(ctx context.Context, postID, author, content string) (*domain.CommunityPost, error) {
	reply := domain.CommunityReply{
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AppendReply(ctx, postID, reply); err != nil {
		return nil, err
	}
	return s.repo.FindPostByID(ctx, postID)
}
