package dto

import (
	"time"

	"github.com/FarmEase/farmease_backend/internal/core/domain"
)

// --- Notification DTOs ---

// NotificationResponse mirrors a stored notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationId"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	EventType      string    `json:"eventType"`
	WorkID         string    `json:"workId"`
	CropName       string    `json:"cropName"`
	WorkName       string    `json:"workName"`
	Message        string    `json:"message"`
	RelatedUserID  string    `json:"relatedUserId,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	IsRead         bool      `json:"isRead"`
}

// ListNotificationsResponse wraps notifications plus the unread counter.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// ToListNotificationsResponse converts domain notifications to DTO.
func ToListNotificationsResponse(ns []domain.Notification, unread int) ListNotificationsResponse {
	list := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		list[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			UserID:         n.UserID,
			Type:           string(n.Role),
			EventType:      string(n.EventType),
			WorkID:         n.WorkID,
			CropName:       n.CropName,
			WorkName:       n.WorkName,
			Message:        n.Message,
			RelatedUserID:  n.RelatedUserID,
			Timestamp:      n.Timestamp,
			IsRead:         n.IsRead,
		}
	}
	return ListNotificationsResponse{Notifications: list, UnreadCount: unread}
}

// MarkNotificationsReadRequest marks specific notifications, or all, as read.
type MarkNotificationsReadRequest struct {
	NotificationIDs []string `json:"notificationIds"`
	MarkAllAsRead   bool     `json:"markAllAsRead"`
}

// MarkNotificationsReadResponse reports how many notifications were updated.
type MarkNotificationsReadResponse struct {
	Success       bool  `json:"success"`
	ModifiedCount int64 `json:"modifiedCount"`
}
