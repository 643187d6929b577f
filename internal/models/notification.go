package models

import "time"

// NotificationType categorizes what triggered a notification
type NotificationType string

const (
	NotificationFriendRequest NotificationType = "friend_request"
	NotificationFollow        NotificationType = "follow"
	NotificationComment       NotificationType = "comment"
	NotificationReaction      NotificationType = "reaction"
)

// Notification represents an append-only event visible to a recipient.
// Unread state is derived by comparing CreatedAt against the recipient's
// LastNotificationReadTime, not by mutating rows.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RecipientID uint             `json:"recipient_id" gorm:"index;not null"`
	Type        NotificationType `json:"type" gorm:"size:20;not null;index"`
	Message     string           `json:"message" gorm:"size:250;not null"`
	Link        string           `json:"link,omitempty" gorm:"size:250"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}
