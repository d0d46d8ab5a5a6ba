package repositories

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile updates the mutable profile fields of a user.
	UpdateProfile(ctx context.Context, user domain.User) error

	// MarkVerified flips the verified flag after OTP confirmation.
	MarkVerified(ctx context.Context, username string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
