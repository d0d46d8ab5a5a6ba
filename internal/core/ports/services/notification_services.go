package services

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// WorkEventNotifierSvc is the narrow interface the farm work service depends on
// to fan out lifecycle events. Fire-and-forget from the caller's perspective.
type WorkEventNotifierSvc interface {
	// NotifyWorkEvent records a notification for the user about a lifecycle
	// event on the given posting. relatedUserID names the counterparty, if any.
	NotifyWorkEvent(ctx context.Context, userID string, role domain.UserRole, event domain.NotificationEventType, work *domain.FarmWork, message, relatedUserID string) error
}

// NotificationReaderSvc defines read operations for notifications.
type NotificationReaderSvc interface {
	// ListNotifications retrieves recent notifications plus the unread count.
	ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, int, error)
}

// NotificationWriterSvc defines write operations for notifications.
type NotificationWriterSvc interface {
	// MarkRead marks specific notifications as read; with markAll set, every
	// unread notification of the user. Returns the number updated.
	MarkRead(ctx context.Context, userID string, notificationIDs []string, markAll bool) (int64, error)
}

// NotificationSvcFacade combines all notification service interfaces.
type NotificationSvcFacade interface {
	WorkEventNotifierSvc
	NotificationReaderSvc
	NotificationWriterSvc
}
