package services

import (
	"testing"
	"time"

	"github.com/companyblog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadCountLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	alice := createTestUser(t, db, "alice")

	// Never marked read: everything counts
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Notification{
			RecipientID: alice.ID,
			Type:        models.NotificationFollow,
			Message:     "someone started following you.",
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	count, err := svc.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, svc.MarkRead(alice.ID))

	count, err = svc.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// A notification created after marking read counts again
	require.NoError(t, db.Create(&models.Notification{
		RecipientID: alice.ID,
		Type:        models.NotificationComment,
		Message:     "someone commented on your post.",
		CreatedAt:   time.Now().Add(time.Minute),
	}).Error)

	count, err = svc.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnreadCountOnlyCountsOwnNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, db.Create(&models.Notification{
		RecipientID: bob.ID,
		Type:        models.NotificationFollow,
		Message:     "alice started following you.",
	}).Error)

	count, err := svc.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = svc.UnreadCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnreadCountUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	_, err := svc.UnreadCount(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecentNotifications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	alice := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&models.Notification{
			RecipientID: alice.ID,
			Type:        models.NotificationReaction,
			Message:     "someone reacted to your post.",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	notifications, total, err := svc.Recent(alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	require.Len(t, notifications, 10)

	// Newest first
	assert.True(t, notifications[0].CreatedAt.After(notifications[9].CreatedAt))

	notifications, _, err = svc.Recent(alice.ID, 2, 10)
	require.NoError(t, err)
	assert.Len(t, notifications, 5)
}
