package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	"github.com/FarmEase/farmease_backend/internal/core/services"
)

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID string, notificationIDs []string) (int64, error) {
	args := m.Called(ctx, userID, notificationIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNotificationRepository
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNotificationRepository)
}

// --- Test Cases ---

func (suite *NotificationServiceTestSuite) TestNotifyWorkEvent_StampsWorkContext() {
	ctx := context.Background()
	svc := services.NewNotificationService(suite.mockRepo, nil, nil)
	work := &domain.FarmWork{
		WorkID:   "work-1",
		CropName: "Tomato",
		WorkType: domain.WorkTypeHarvesting,
	}

	suite.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.NotificationID != "" &&
			n.UserID == "ramesh" &&
			n.WorkID == "work-1" &&
			n.WorkName == "harvesting work" &&
			!n.IsRead &&
			time.Since(n.Timestamp) < time.Second
	})).Return(nil).Once()

	err := svc.NotifyWorkEvent(ctx, "ramesh", domain.RoleFarmer, domain.EventApplication, work, "someone applied", "suresh")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_DefaultsLimit() {
	ctx := context.Background()
	svc := services.NewNotificationService(suite.mockRepo, nil, nil)

	suite.mockRepo.On("ListNotificationsByUser", ctx, "ramesh", 50, false).
		Return([]domain.Notification{{NotificationID: "n-1"}}, nil).Once()
	suite.mockRepo.On("CountUnread", ctx, "ramesh").Return(3, nil).Once()

	notifications, unread, err := svc.ListNotifications(ctx, "ramesh", 0, false)

	suite.Require().NoError(err)
	suite.Len(notifications, 1)
	suite.Equal(3, unread)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_AllFlagWins() {
	ctx := context.Background()
	svc := services.NewNotificationService(suite.mockRepo, nil, nil)

	suite.mockRepo.On("MarkAllRead", ctx, "ramesh").Return(int64(7), nil).Once()

	count, err := svc.MarkRead(ctx, "ramesh", []string{"n-1"}, true)

	suite.Require().NoError(err)
	suite.Equal(int64(7), count)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_EmptyIDsIsNoop() {
	ctx := context.Background()
	svc := services.NewNotificationService(suite.mockRepo, nil, nil)

	count, err := svc.MarkRead(ctx, "ramesh", nil, false)

	suite.Require().NoError(err)
	suite.Zero(count)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotifyWorkEvent_CancellationEmailsApplicant() {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockEmails := new(MockEmailSender)
	svc := services.NewNotificationService(suite.mockRepo, mockUsers, mockEmails)
	work := &domain.FarmWork{WorkID: "work-1", CropName: "Tomato", WorkType: domain.WorkTypeHarvesting}

	suite.mockRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()
	mockUsers.On("FindUserByUsername", ctx, "suresh").
		Return(&domain.User{Username: "suresh", Email: "suresh@example.com"}, nil).Once()
	mockEmails.On("SendEmail", ctx, "suresh@example.com", "Farm work cancelled: harvesting work", "the posting was cancelled").
		Return(nil).Once()

	err := svc.NotifyWorkEvent(ctx, "suresh", domain.RoleLabour, domain.EventCancellation, work, "the posting was cancelled", "ramesh")

	suite.Require().NoError(err)
	mockEmails.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyWorkEvent_EmailFailureIsSwallowed() {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockEmails := new(MockEmailSender)
	svc := services.NewNotificationService(suite.mockRepo, mockUsers, mockEmails)
	work := &domain.FarmWork{WorkID: "work-1", CropName: "Tomato", WorkType: domain.WorkTypeHarvesting}

	suite.mockRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()
	mockUsers.On("FindUserByUsername", ctx, "suresh").
		Return(&domain.User{Username: "suresh", Email: "suresh@example.com"}, nil).Once()
	mockEmails.On("SendEmail", ctx, "suresh@example.com", mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded).Once()

	err := svc.NotifyWorkEvent(ctx, "suresh", domain.RoleLabour, domain.EventCancellation, work, "the posting was cancelled", "ramesh")

	suite.Require().NoError(err)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
