package repositories

import (
	"github.com/companyblog/backend/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friend request and
// friendship data operations
type FriendshipRepository interface {
	CreateFriendRequest(req *models.FriendRequest) error
	GetFriendRequest(senderID, recipientID uint) (*models.FriendRequest, error)
	RequestExistsBetween(a, b uint) (bool, error)
	DeleteFriendRequest(id uint) error
	GetPendingRequests(recipientID uint) ([]models.FriendRequest, error)
	GetSentRequests(senderID uint) ([]models.FriendRequest, error)
	CreateFriendship(friendship *models.Friendship) error
	DeleteFriendship(a, b uint) (bool, error)
	AreFriends(a, b uint) (bool, error)
	GetFriends(userID uint) ([]models.User, error)
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// CreateFriendRequest creates a new pending friend request
func (r *PostgresFriendshipRepository) CreateFriendRequest(req *models.FriendRequest) error {
	return r.db.Create(req).Error
}

// GetFriendRequest retrieves the pending request from sender to recipient
func (r *PostgresFriendshipRepository) GetFriendRequest(senderID, recipientID uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := r.db.Where("sender_id = ? AND recipient_id = ?", senderID, recipientID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// RequestExistsBetween reports whether a pending request exists in either direction
func (r *PostgresFriendshipRepository) RequestExistsBetween(a, b uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.FriendRequest{}).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// DeleteFriendRequest deletes a friend request by ID
func (r *PostgresFriendshipRepository) DeleteFriendRequest(id uint) error {
	return r.db.Delete(&models.FriendRequest{}, id).Error
}

// GetPendingRequests retrieves all incoming pending requests for a user
func (r *PostgresFriendshipRepository) GetPendingRequests(recipientID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetSentRequests retrieves all outgoing pending requests for a user
func (r *PostgresFriendshipRepository) GetSentRequests(senderID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.Where("sender_id = ?", senderID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateFriendship creates the undirected friendship edge
func (r *PostgresFriendshipRepository) CreateFriendship(friendship *models.Friendship) error {
	return r.db.Create(friendship).Error
}

// DeleteFriendship removes the edge between two users regardless of pair
// order and reports whether a row was deleted
func (r *PostgresFriendshipRepository) DeleteFriendship(a, b uint) (bool, error) {
	if a > b {
		a, b = b, a
	}
	res := r.db.Where("user_id = ? AND friend_id = ?", a, b).Delete(&models.Friendship{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AreFriends reports whether an edge exists between two users
func (r *PostgresFriendshipRepository) AreFriends(a, b uint) (bool, error) {
	if a > b {
		a, b = b, a
	}
	var count int64
	err := r.db.Model(&models.Friendship{}).Where("user_id = ? AND friend_id = ?", a, b).Count(&count).Error
	return count > 0, err
}

// GetFriends retrieves all friends of a user
func (r *PostgresFriendshipRepository) GetFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	subQuery1 := r.db.Table("friendships").Select("friend_id").Where("user_id = ?", userID)
	subQuery2 := r.db.Table("friendships").Select("user_id").Where("friend_id = ?", userID)

	if err := r.db.Where("id IN (?) OR id IN (?)", subQuery1, subQuery2).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}
