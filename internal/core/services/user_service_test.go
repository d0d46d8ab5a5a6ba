package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/core/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/utils"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// --- Mock OTPStore ---

type MockOTPStore struct {
	mock.Mock
}

var _ portssvc.OTPStore = (*MockOTPStore)(nil)

func (m *MockOTPStore) PutOTP(ctx context.Context, username, code string, ttl time.Duration) error {
	args := m.Called(ctx, username, code, ttl)
	return args.Error(0)
}

func (m *MockOTPStore) GetOTP(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *MockOTPStore) DeleteOTP(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// --- Mock EmailSender ---

type MockEmailSender struct {
	mock.Mock
}

var _ portssvc.EmailSender = (*MockEmailSender)(nil)

func (m *MockEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockUserRepository
	mockOTPs   *MockOTPStore
	mockEmails *MockEmailSender
	service    portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockOTPs = new(MockOTPStore)
	suite.mockEmails = new(MockEmailSender)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockOTPs, suite.mockEmails, 10*time.Minute)
}

func (suite *UserServiceTestSuite) registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "ramesh",
		Password: "sup3r-secret",
		Role:     "farmer",
		FullName: "Ramesh Patil",
		Email:    "ramesh@example.com",
		Mobile:   "9876543210",
		Area:     "Nashik",
		State:    "Maharashtra",
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := suite.registerRequest()

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockOTPs.On("PutOTP", ctx, "ramesh", mock.AnythingOfType("string"), 10*time.Minute).Return(nil).Once()
	suite.mockEmails.On("SendEmail", ctx, "ramesh@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.False(user.Verified)
	suite.Equal(domain.RoleFarmer, user.Role)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockOTPs.AssertExpectations(suite.T())
	suite.mockEmails.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_EmailFailureDoesNotFailSignup() {
	ctx := context.Background()
	req := suite.registerRequest()

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockOTPs.On("PutOTP", ctx, "ramesh", mock.AnythingOfType("string"), 10*time.Minute).Return(nil).Once()
	suite.mockEmails.On("SendEmail", ctx, "ramesh@example.com", mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(user)
}

func (suite *UserServiceTestSuite) TestVerifySignupOTP_Success() {
	ctx := context.Background()
	user := &domain.User{Username: "ramesh", Verified: false}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()
	suite.mockOTPs.On("GetOTP", ctx, "ramesh").Return("123456", nil).Once()
	suite.mockRepo.On("MarkVerified", ctx, "ramesh").Return(nil).Once()
	suite.mockOTPs.On("DeleteOTP", ctx, "ramesh").Return(nil).Once()

	suite.NoError(suite.service.VerifySignupOTP(ctx, "ramesh", "123456"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestVerifySignupOTP_WrongCode() {
	ctx := context.Background()
	user := &domain.User{Username: "ramesh", Verified: false}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()
	suite.mockOTPs.On("GetOTP", ctx, "ramesh").Return("123456", nil).Once()

	err := suite.service.VerifySignupOTP(ctx, "ramesh", "000000")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkVerified", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestVerifySignupOTP_ExpiredCode() {
	ctx := context.Background()
	user := &domain.User{Username: "ramesh", Verified: false}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()
	suite.mockOTPs.On("GetOTP", ctx, "ramesh").Return("", nil).Once()

	err := suite.service.VerifySignupOTP(ctx, "ramesh", "123456")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestVerifySignupOTP_AlreadyVerified() {
	ctx := context.Background()
	user := &domain.User{Username: "ramesh", Verified: true}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()

	suite.NoError(suite.service.VerifySignupOTP(ctx, "ramesh", "123456"))
	suite.mockOTPs.AssertNotCalled(suite.T(), "GetOTP", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	user := &domain.User{Username: "ramesh", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "ramesh", "wrong-password")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_OnlyProvidedFields() {
	ctx := context.Background()
	user := &domain.User{
		Username: "ramesh",
		FullName: "Ramesh Patil",
		Mobile:   "9876543210",
		Area:     "Nashik",
		State:    "Maharashtra",
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(user, nil).Once()
	suite.mockRepo.On("UpdateProfile", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Area == "Pune" && u.FullName == "Ramesh Patil" && u.Mobile == "9876543210"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, "ramesh", dto.UpdateProfileRequest{Area: "Pune"})

	suite.Require().NoError(err)
	suite.Equal("Pune", updated.Area)
	suite.Equal("Maharashtra", updated.State)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
