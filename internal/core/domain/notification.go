package domain

import "time"

// NotificationEventType enumerates the lifecycle events that produce notifications.
type NotificationEventType string

const (
	EventApplication  NotificationEventType = "application"
	EventWithdrawal   NotificationEventType = "withdrawal"
	EventCreation     NotificationEventType = "creation"
	EventCompletion   NotificationEventType = "completion"
	EventCancellation NotificationEventType = "cancellation"
)

// Notification is a per-user message generated by farm work lifecycle events.
type Notification struct {
	NotificationID string                `json:"notificationId"`
	UserID         string                `json:"userId"`
	Role           UserRole              `json:"type"`
	EventType      NotificationEventType `json:"eventType"`
	WorkID         string                `json:"workId"`
	CropName       string                `json:"cropName"`
	WorkName       string                `json:"workName"`
	Message        string                `json:"message"`
	RelatedUserID  string                `json:"relatedUserId,omitempty"`
	Timestamp      time.Time             `json:"timestamp"`
	IsRead         bool                  `json:"isRead"`
}
