package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository persists user accounts and profiles.
type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, password_hash, role, full_name, email, mobile, area, state,
		       verified, created_at, updated_at
		FROM users
		WHERE username = $1;
	`
	var u domain.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.FullName,
		&u.Email,
		&u.Mobile,
		&u.Area,
		&u.State,
		&u.Verified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+username, err)
	}
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			username, password_hash, role, full_name, email, mobile, area, state,
			verified, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.FullName,
		user.Email,
		user.Mobile,
		user.Area,
		user.State,
		user.Verified,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("username " + user.Username + " is already taken")
		}
		return apperrors.NewAppError(500, "failed to save user "+user.Username, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, mobile = $4, area = $5, state = $6, updated_at = $7
		WHERE username = $1;
	`
	result, err := r.Pool.Exec(ctx, query,
		user.Username,
		user.FullName,
		user.Email,
		user.Mobile,
		user.Area,
		user.State,
		time.Now(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update profile for "+user.Username, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkVerified(ctx context.Context, username string) error {
	query := `UPDATE users SET verified = TRUE, updated_at = $2 WHERE username = $1;`
	result, err := r.Pool.Exec(ctx, query, username, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark user "+username+" verified", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
