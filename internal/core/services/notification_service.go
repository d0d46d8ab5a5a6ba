package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
	portsrepo "github.com/FarmEase/farmease_backend/internal/core/ports/repositories"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

const defaultNotificationLimit = 50

// notificationService records and serves per-user lifecycle notifications.
// Cancellations additionally fan out by email when a sender is configured.
type notificationService struct {
	BaseService
	repo   portsrepo.NotificationRepositoryFacade
	users  portsrepo.UserReader
	emails portssvc.EmailSender
}

// NewNotificationService creates a new notification service. users and emails
// may be nil, which disables the email fan-out.
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade, users portsrepo.UserReader, emails portssvc.EmailSender) portssvc.NotificationSvcFacade {
	return &notificationService{repo: repo, users: users, emails: emails}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) NotifyWorkEvent(ctx context.Context, userID string, role domain.UserRole, event domain.NotificationEventType, work *domain.FarmWork, message, relatedUserID string) error {
	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Role:           role,
		EventType:      event,
		Message:        message,
		RelatedUserID:  relatedUserID,
		Timestamp:      time.Now(),
	}
	if work != nil {
		n.WorkID = work.WorkID
		n.CropName = work.CropName
		n.WorkName = work.WorkName()
	}
	if err := s.repo.SaveNotification(ctx, n); err != nil {
		return err
	}

	if event == domain.EventCancellation {
		s.emailCancellation(ctx, userID, n)
	}
	return nil
}

// emailCancellation sends a best-effort email about a cancelled posting.
// Failures are logged and never surfaced to the caller.
func (s *notificationService) emailCancellation(ctx context.Context, userID string, n domain.Notification) {
	if s.users == nil || s.emails == nil {
		return
	}
	user, err := s.users.FindUserByUsername(ctx, userID)
	if err != nil || user.Email == "" {
		return
	}
	subject := "Farm work cancelled: " + n.WorkName
	if err := s.emails.SendEmail(ctx, user.Email, subject, n.Message); err != nil {
		s.LogWarn(ctx, "failed to email cancellation notice",
			"user_id", userID, "error", err)
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, int, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	notifications, err := s.repo.ListNotificationsByUser(ctx, userID, limit, unreadOnly)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationIDs []string, markAll bool) (int64, error) {
	if markAll {
		return s.repo.MarkAllRead(ctx, userID)
	}
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	return s.repo.MarkRead(ctx, userID, notificationIDs)
}
