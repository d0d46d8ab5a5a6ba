package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	"github.com/FarmEase/farmease_backend/internal/dto"
)

// UserReaderSvc defines read operations for users.
type UserReaderSvc interface {
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetLocation retrieves the {area, state} pair of a user's profile. Used to
	// stamp new postings and scope labourer discovery.
	GetLocation(ctx context.Context, username string) (*domain.Location, error)

	// Authenticate checks the username/password pair and returns the user.
	// Fails with ErrNotFound for unknown users and bad passwords alike.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserWriterSvc defines write operations for users.
type UserWriterSvc interface {
	// Register creates an unverified user and sends a signup OTP to their email.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// VerifySignupOTP checks the emailed OTP and marks the user verified.
	VerifySignupOTP(ctx context.Context, username, otp string) error

	// UpdateProfile updates the caller's own profile fields.
	UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
