package models

import "time"

// Follow represents a directed follow edge between two users
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}
