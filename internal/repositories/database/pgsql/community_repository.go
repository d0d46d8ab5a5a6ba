package pgsql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCommunityRepository persists discussion board posts with their replies
// embedded as a JSONB array, appended in insertion order.
type PgxCommunityRepository struct {
	BaseRepository
}

func newPgxCommunityRepository(pool *pgxpool.Pool) portsrepo.CommunityRepositoryFacade {
	return &PgxCommunityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommunityRepositoryFacade = (*PgxCommunityRepository)(nil)

func (r *PgxCommunityRepository) FindPostByID(ctx context.Context, postID string) (*domain.CommunityPost, error) {
	query := `
		SELECT post_id, author, title, content, category, replies, created_at
		FROM community_posts
		WHERE post_id = $1;
	`
	var p domain.CommunityPost
	err := r.Pool.QueryRow(ctx, query, postID).Scan(
		&p.PostID,
		&p.Author,
		&p.Title,
		&p.Content,
		&p.Category,
		&p.Replies,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find community post "+postID, err)
	}
	if p.Replies == nil {
		p.Replies = []domain.CommunityReply{}
	}
	return &p, nil
}

func (r *PgxCommunityRepository) ListPosts(ctx context.Context, category string, limit int) ([]domain.CommunityPost, error) {
	query := `
		SELECT post_id, author, title, content, category, replies, created_at
		FROM community_posts
	`
	args := []any{limit}
	if category != "" {
		query += ` WHERE category ILIKE $2`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query community posts", err)
	}
	defer rows.Close()

	posts := []domain.CommunityPost{}
	for rows.Next() {
		var p domain.CommunityPost
		err := rows.Scan(&p.PostID, &p.Author, &p.Title, &p.Content, &p.Category, &p.Replies, &p.CreatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan community post row", err)
		}
		if p.Replies == nil {
			p.Replies = []domain.CommunityReply{}
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate community post rows", err)
	}
	return posts, nil
}

func (r *PgxCommunityRepository) SavePost(ctx context.Context, post domain.CommunityPost) error {
	replies, err := json.Marshal(post.Replies)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal replies", err)
	}

	query := `
		INSERT INTO community_posts (post_id, author, title, content, category, replies, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.Pool.Exec(ctx, query,
		post.PostID,
		post.Author,
		post.Title,
		post.Content,
		post.Category,
		replies,
		post.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("post ID " + post.PostID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save community post "+post.PostID, err)
	}
	return nil
}

func (r *PgxCommunityRepository) AppendReply(ctx context.Context, postID string, reply domain.CommunityReply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal reply", err)
	}

	query := `
		UPDATE community_posts
		SET replies = replies || $2::jsonb
		WHERE post_id = $1;
	`
	result, err := r.Pool.Exec(ctx, query, postID, payload)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append reply to post "+postID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
