package repositories

import (
	"github.com/companyblog/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.BlogPost) error
	GetPostByID(id uint) (*models.BlogPost, error)
	GetPostsByUserID(userID uint, page, limit int) ([]models.BlogPost, int64, error)
	GetAllPosts(page, limit int) ([]models.BlogPost, int64, error)
	UpdatePost(post *models.BlogPost) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByUserID retrieves a page of posts by a specific user, newest first
func (r *PostgresPostRepository) GetPostsByUserID(userID uint, page, limit int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	if err := r.db.Model(&models.BlogPost{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// GetAllPosts retrieves a page of all posts, newest first
func (r *PostgresPostRepository) GetAllPosts(page, limit int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	if err := r.db.Model(&models.BlogPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post by ID along with its comments and reactions
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, id).Error
	})
}
