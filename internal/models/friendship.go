package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendRequest represents a pending friend request between two users.
// Rows exist only while the request is pending; accepting or declining
// deletes the row.
type FriendRequest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"index;uniqueIndex:idx_sender_recipient"`
	RecipientID uint      `json:"recipient_id" gorm:"index;uniqueIndex:idx_sender_recipient"`
	CreatedAt   time.Time `json:"created_at"`
}

// Friendship represents an accepted, mutual friendship stored as a single
// undirected edge. The pair is kept in canonical order so the same
// friendship can never exist twice.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_friend_pair"`
	FriendID  uint      `json:"friend_id" gorm:"index;uniqueIndex:idx_friend_pair"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate ensures UserID < FriendID for consistent ordering
func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	if f.UserID > f.FriendID {
		f.UserID, f.FriendID = f.FriendID, f.UserID
	}
	return nil
}
