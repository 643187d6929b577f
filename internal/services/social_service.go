package services

import (
	"errors"
	"fmt"

	"github.com/companyblog/backend/internal/models"
	"github.com/companyblog/backend/internal/repositories"
	"gorm.io/gorm"
)

// SocialService implements the follow and friendship operations of the
// social graph, emitting notifications as a side effect of follow and
// friend-request actions.
type SocialService struct {
	db            *gorm.DB
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	friendships   repositories.FriendshipRepository
	notifications repositories.NotificationRepository
}

// NewSocialService creates a new SocialService
func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{
		db:            db,
		users:         repositories.NewPostgresUserRepository(db),
		follows:       repositories.NewPostgresFollowRepository(db),
		friendships:   repositories.NewPostgresFriendshipRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
	}
}

// Follow creates the directed edge follower -> followed. The operation is
// idempotent: following a user twice leaves exactly one edge and emits no
// second notification. Self-follow is rejected.
func (s *SocialService) Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return models.ErrInvalid
	}

	follower, err := s.users.GetUserByID(followerID)
	if err != nil {
		return asDomainErr(err)
	}
	if _, err := s.users.GetUserByID(followedID); err != nil {
		return asDomainErr(err)
	}

	following, err := s.follows.IsFollowing(followerID, followedID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresFollowRepository(tx).CreateFollow(&models.Follow{
			FollowerID: followerID,
			FollowedID: followedID,
		}); err != nil {
			return err
		}
		return repositories.NewPostgresNotificationRepository(tx).CreateNotification(&models.Notification{
			RecipientID: followedID,
			Type:        models.NotificationFollow,
			Message:     fmt.Sprintf("%s started following you.", follower.Username),
			Link:        fmt.Sprintf("/user/%s", follower.Username),
		})
	})
}

// Unfollow removes the directed edge if present; no-op otherwise
func (s *SocialService) Unfollow(followerID, followedID uint) error {
	if followerID == followedID {
		return models.ErrInvalid
	}
	_, err := s.follows.DeleteFollow(followerID, followedID)
	return err
}

// IsFollowing reports whether the directed edge exists
func (s *SocialService) IsFollowing(followerID, followedID uint) (bool, error) {
	return s.follows.IsFollowing(followerID, followedID)
}

// Followers returns the users following the given user
func (s *SocialService) Followers(userID uint) ([]models.User, error) {
	return s.follows.GetFollowers(userID)
}

// Following returns the users the given user follows
func (s *SocialService) Following(userID uint) ([]models.User, error) {
	return s.follows.GetFollowing(userID)
}

// FollowerCount returns how many users follow the given user
func (s *SocialService) FollowerCount(userID uint) (int64, error) {
	return s.follows.GetFollowersCount(userID)
}

// FollowingCount returns how many users the given user follows
func (s *SocialService) FollowingCount(userID uint) (int64, error) {
	return s.follows.GetFollowingCount(userID)
}

// SendFriendRequest creates a pending request from sender to recipient.
// It is rejected when the two are the same user, already friends, or a
// pending request already exists in either direction.
func (s *SocialService) SendFriendRequest(senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, models.ErrInvalid
	}

	sender, err := s.users.GetUserByID(senderID)
	if err != nil {
		return nil, asDomainErr(err)
	}
	if _, err := s.users.GetUserByID(recipientID); err != nil {
		return nil, asDomainErr(err)
	}

	friends, err := s.friendships.AreFriends(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, models.ErrAlreadyExists
	}

	exists, err := s.friendships.RequestExistsBetween(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrAlreadyExists
	}

	request := &models.FriendRequest{SenderID: senderID, RecipientID: recipientID}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresFriendshipRepository(tx).CreateFriendRequest(request); err != nil {
			return err
		}
		return repositories.NewPostgresNotificationRepository(tx).CreateNotification(&models.Notification{
			RecipientID: recipientID,
			Type:        models.NotificationFriendRequest,
			Message:     fmt.Sprintf("%s sent you a friend request.", sender.Username),
			Link:        fmt.Sprintf("/user/%s", sender.Username),
		})
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// AcceptFriendRequest accepts the pending request from senderID to userID:
// the request row is deleted and the friendship edge created in one
// transaction. Returns ErrNotFound when no such request exists.
func (s *SocialService) AcceptFriendRequest(userID, senderID uint) error {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return asDomainErr(err)
	}

	request, err := s.friendships.GetFriendRequest(senderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txFriendships := repositories.NewPostgresFriendshipRepository(tx)
		if err := txFriendships.DeleteFriendRequest(request.ID); err != nil {
			return err
		}
		if err := txFriendships.CreateFriendship(&models.Friendship{
			UserID:   userID,
			FriendID: senderID,
		}); err != nil {
			return err
		}
		return repositories.NewPostgresNotificationRepository(tx).CreateNotification(&models.Notification{
			RecipientID: senderID,
			Type:        models.NotificationFriendRequest,
			Message:     fmt.Sprintf("%s accepted your friend request.", user.Username),
			Link:        fmt.Sprintf("/user/%s", user.Username),
		})
	})
}

// DeclineFriendRequest removes the pending request from senderID to userID
// with no side effect on friendship
func (s *SocialService) DeclineFriendRequest(userID, senderID uint) error {
	request, err := s.friendships.GetFriendRequest(senderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.friendships.DeleteFriendRequest(request.ID)
}

// RemoveFriend removes the friendship edge if present; no-op otherwise
func (s *SocialService) RemoveFriend(userID, friendID uint) error {
	if userID == friendID {
		return models.ErrInvalid
	}
	_, err := s.friendships.DeleteFriendship(userID, friendID)
	return err
}

// IsFriend reports whether the two users are friends
func (s *SocialService) IsFriend(a, b uint) (bool, error) {
	return s.friendships.AreFriends(a, b)
}

// Friends returns all friends of the given user
func (s *SocialService) Friends(userID uint) ([]models.User, error) {
	return s.friendships.GetFriends(userID)
}

// PendingRequests returns the incoming pending requests for a user
func (s *SocialService) PendingRequests(userID uint) ([]models.FriendRequest, error) {
	return s.friendships.GetPendingRequests(userID)
}

// SentRequests returns the outgoing pending requests for a user
func (s *SocialService) SentRequests(userID uint) ([]models.FriendRequest, error) {
	return s.friendships.GetSentRequests(userID)
}

// HasSentFriendRequest reports whether a pending request from sender to
// recipient exists
func (s *SocialService) HasSentFriendRequest(senderID, recipientID uint) (bool, error) {
	_, err := s.friendships.GetFriendRequest(senderID, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HasReceivedFriendRequest reports whether a pending request from sender
// to recipient exists, seen from the recipient's side
func (s *SocialService) HasReceivedFriendRequest(recipientID, senderID uint) (bool, error) {
	return s.HasSentFriendRequest(senderID, recipientID)
}
