package repositories

import (
	"context"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	// ListNotificationsByUser retrieves the most recent notifications for a
	// user, optionally only unread ones.
	ListNotificationsByUser(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, n domain.Notification) error

	// MarkRead marks the given notifications of the user as read and returns
	// how many rows changed.
	MarkRead(ctx context.Context, userID string, notificationIDs []string) (int64, error)

	// MarkAllRead marks every unread notification of the user as read.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
