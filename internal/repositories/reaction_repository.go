package repositories

import (
	"github.com/companyblog/backend/internal/models"
	"gorm.io/gorm"
)

// ReactionRepository defines the interface for reaction data operations
type ReactionRepository interface {
	CreateReaction(reaction *models.Reaction) error
	GetReaction(userID, postID uint) (*models.Reaction, error)
	UpdateReactionType(id uint, reactionType models.ReactionType) error
	DeleteReaction(id uint) error
	CountsByPostID(postID uint) (map[models.ReactionType]int64, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// CreateReaction creates a new reaction
func (r *PostgresReactionRepository) CreateReaction(reaction *models.Reaction) error {
	return r.db.Create(reaction).Error
}

// GetReaction retrieves the reaction a user applied to a post, if any
func (r *PostgresReactionRepository) GetReaction(userID, postID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

// UpdateReactionType changes the type of an existing reaction in place
func (r *PostgresReactionRepository) UpdateReactionType(id uint, reactionType models.ReactionType) error {
	return r.db.Model(&models.Reaction{}).Where("id = ?", id).Update("type", reactionType).Error
}

// DeleteReaction deletes a reaction by ID
func (r *PostgresReactionRepository) DeleteReaction(id uint) error {
	return r.db.Delete(&models.Reaction{}, id).Error
}

// CountsByPostID tallies reactions for a post grouped by type, recomputed
// from the rows on every call. Types with no reactions are present with a
// zero count.
func (r *PostgresReactionRepository) CountsByPostID(postID uint) (map[models.ReactionType]int64, error) {
	type row struct {
		Type  models.ReactionType
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.Reaction{}).
		Select("type, COUNT(*) as count").
		Where("post_id = ?", postID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ReactionType]int64, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		counts[t] = 0
	}
	for _, rw := range rows {
		counts[rw.Type] = rw.Count
	}
	return counts, nil
}
