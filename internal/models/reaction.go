package models

import "time"

// ReactionType is one of the six fixed emoji categories
type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionLove  ReactionType = "love"
	ReactionHaha  ReactionType = "haha"
	ReactionWow   ReactionType = "wow"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

// ReactionTypes lists all valid reaction types in display order
var ReactionTypes = []ReactionType{
	ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry,
}

// Valid reports whether t is one of the six known types
func (t ReactionType) Valid() bool {
	switch t {
	case ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry:
		return true
	}
	return false
}

// Reaction represents one emoji reaction a user applied to a post.
// The unique index on (user_id, post_id) enforces at most one reaction
// per user per post at the data layer.
type Reaction struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    uint         `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_reaction"`
	PostID    uint         `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_reaction"`
	Type      ReactionType `json:"type" gorm:"size:10;not null"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReactRequest defines the input for reacting to a post
type ReactRequest struct {
	Type ReactionType `json:"type" validate:"required,oneof=like love haha wow sad angry"`
}
