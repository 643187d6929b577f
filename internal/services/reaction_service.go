package services

import (
	"errors"
	"fmt"

	"github.com/companyblog/backend/internal/models"
	"github.com/companyblog/backend/internal/repositories"
	"gorm.io/gorm"
)

// ReactionService implements the toggle semantics for emoji reactions and
// the per-post tally.
type ReactionService struct {
	db        *gorm.DB
	users     repositories.UserRepository
	posts     repositories.PostRepository
	reactions repositories.ReactionRepository
}

// NewReactionService creates a new ReactionService
func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{
		db:        db,
		users:     repositories.NewPostgresUserRepository(db),
		posts:     repositories.NewPostgresPostRepository(db),
		reactions: repositories.NewPostgresReactionRepository(db),
	}
}

// Toggle applies reactionType from the user to the post. Reacting with the
// same type twice removes the reaction; reacting with a different type
// changes the existing row in place. A row is only ever created when the
// user has no reaction on the post, so the (user, post) uniqueness holds
// on every path.
func (s *ReactionService) Toggle(userID, postID uint, reactionType models.ReactionType) error {
	if !reactionType.Valid() {
		return models.ErrInvalid
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return asDomainErr(err)
	}
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return asDomainErr(err)
	}

	existing, err := s.reactions.GetReaction(userID, postID)
	if err == nil {
		if existing.Type == reactionType {
			return s.reactions.DeleteReaction(existing.ID)
		}
		return s.reactions.UpdateReactionType(existing.ID, reactionType)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresReactionRepository(tx).CreateReaction(&models.Reaction{
			UserID: userID,
			PostID: postID,
			Type:   reactionType,
		}); err != nil {
			return err
		}
		if post.UserID == userID {
			return nil
		}
		return repositories.NewPostgresNotificationRepository(tx).CreateNotification(&models.Notification{
			RecipientID: post.UserID,
			Type:        models.NotificationReaction,
			Message:     fmt.Sprintf("%s reacted to your post \"%s\".", user.Username, post.Title),
			Link:        fmt.Sprintf("/post/%d", post.ID),
		})
	})
}

// Counts tallies the post's reactions grouped by type, recomputed from the
// rows on every read
func (s *ReactionService) Counts(postID uint) (map[models.ReactionType]int64, error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		return nil, asDomainErr(err)
	}
	return s.reactions.CountsByPostID(postID)
}
