package services

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/utils"
)

const signupOTPLength = 6

// userService implements account registration with email OTP verification and
// profile management.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	otpStore portssvc.OTPStore
	emails   portssvc.EmailSender
	otpTTL   time.Duration
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	otpStore portssvc.OTPStore,
	emails portssvc.EmailSender,
	otpTTL time.Duration,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		otpStore: otpStore,
		emails:   emails,
		otpTTL:   otpTTL,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) GetLocation(ctx context.Context, username string) (*domain.Location, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &domain.Location{Area: user.Area, State: user.State}, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		// Same error as an unknown user so callers cannot probe usernames.
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown role " + req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	user := domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Area:         req.Area,
		State:        req.State,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user registered", "username", user.Username, "role", req.Role)

	if err := s.sendSignupOTP(ctx, &user); err != nil {
		// The account exists; verification can be retried.
		s.LogWarn(ctx, "failed to send signup OTP", "username", user.Username, "error", err)
	}
	return &user, nil
}

func (s *userService) sendSignupOTP(ctx context.Context, user *domain.User) error {
	code, err := utils.GenerateOTP(signupOTPLength)
	if err != nil {
		return err
	}
	if err := s.otpStore.PutOTP(ctx, user.Username, code, s.otpTTL); err != nil {
		return err
	}
	body := "Hello " + user.FullName + ",\n\n" +
		"Your FarmEase verification code is " + code + ". " +
		"It expires in " + s.otpTTL.String() + ".\n"
	return s.emails.SendEmail(ctx, user.Email, "Verify your FarmEase account", body)
}

func (s *userService) VerifySignupOTP(ctx context.Context, username, otp string) error {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.Verified {
		return nil
	}

	stored, err := s.otpStore.GetOTP(ctx, username)
	if err != nil {
		return apperrors.NewAppError(500, "failed to look up OTP", err)
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(otp)) != 1 {
		return apperrors.NewValidationFailedError("invalid or expired verification code")
	}

	if err := s.userRepo.MarkVerified(ctx, username); err != nil {
		return err
	}
	if err := s.otpStore.DeleteOTP(ctx, username); err != nil {
		s.LogWarn(ctx, "failed to delete consumed OTP", "username", username, "error", err)
	}

	s.LogInfo(ctx, "user verified", "username", username)
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if req.Area != "" {
		user.Area = req.Area
	}
	if req.State != "" {
		user.State = req.State
	}

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now()

	s.LogInfo(ctx, "profile updated", "username", username)
	return user, nil
}
