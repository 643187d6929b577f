package services

import (
	"time"

	"github.com/companyblog/backend/internal/models"
	"github.com/companyblog/backend/internal/repositories"
	"gorm.io/gorm"
)

// notificationEpoch is the lower bound used when a user has never marked
// their notifications as read.
var notificationEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// NotificationService derives unread counts and serves the notification
// feed. Notifications are append-only: marking read advances the user's
// last-read timestamp rather than mutating rows.
type NotificationService struct {
	users         repositories.UserRepository
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{
		users:         repositories.NewPostgresUserRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
	}
}

// UnreadCount counts notifications created strictly after the user's
// last-read timestamp
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return 0, asDomainErr(err)
	}

	lastRead := notificationEpoch
	if user.LastNotificationReadTime != nil {
		lastRead = *user.LastNotificationReadTime
	}
	return s.notifications.CountSince(userID, lastRead)
}

// MarkRead advances the user's last-read timestamp to now
func (s *NotificationService) MarkRead(userID uint) error {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return asDomainErr(err)
	}
	return s.users.SetLastNotificationReadTime(userID, time.Now())
}

// Recent returns a page of the user's notifications, newest first, with
// the total count
func (s *NotificationService) Recent(userID uint, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.notifications.GetByRecipientID(userID, page, limit)
}
