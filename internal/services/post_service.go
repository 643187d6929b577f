package services

import (
	"fmt"

	"github.com/companyblog/backend/internal/models"
	"github.com/companyblog/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PostService handles post and comment lifecycle with ownership checks
type PostService struct {
	db       *gorm.DB
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	validate *validator.Validate
}

// NewPostService creates a new PostService
func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		db:       db,
		users:    repositories.NewPostgresUserRepository(db),
		posts:    repositories.NewPostgresPostRepository(db),
		comments: repositories.NewPostgresCommentRepository(db),
		validate: validator.New(),
	}
}

// CreatePost creates a new post authored by the given user
func (s *PostService) CreatePost(userID uint, req models.CreatePostRequest) (*models.BlogPost, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, asDomainErr(err)
	}

	post := &models.BlogPost{
		UserID:    userID,
		Title:     req.Title,
		Text:      req.Text,
		ImageFile: req.ImageFile,
	}
	if post.ImageFile == "" {
		post.ImageFile = "default.jpg"
	}

	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id uint) (*models.BlogPost, error) {
	post, err := s.posts.GetPostByID(id)
	if err != nil {
		return nil, asDomainErr(err)
	}
	return post, nil
}

// ListPosts returns a page of all posts, newest first
func (s *PostService) ListPosts(page, limit int) ([]models.BlogPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.posts.GetAllPosts(page, limit)
}

// ListUserPosts returns a page of a user's posts, newest first
func (s *PostService) ListUserPosts(userID uint, page, limit int) ([]models.BlogPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.posts.GetPostsByUserID(userID, page, limit)
}

// UpdatePost updates a post; only the author may do so
func (s *PostService) UpdatePost(userID, postID uint, req models.UpdatePostRequest) (*models.BlogPost, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, asDomainErr(err)
	}
	if post.UserID != userID {
		return nil, models.ErrForbidden
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Text != "" {
		post.Text = req.Text
	}

	if err := s.posts.UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and its comments and reactions; only the
// author may do so
func (s *PostService) DeletePost(userID, postID uint) error {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return asDomainErr(err)
	}
	if post.UserID != userID {
		return models.ErrForbidden
	}
	return s.posts.DeletePost(postID)
}

// AddComment adds a comment to a post, notifying the post author unless
// they commented on their own post
func (s *PostService) AddComment(userID, postID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, asDomainErr(err)
	}
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, asDomainErr(err)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   req.Body,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresCommentRepository(tx).CreateComment(comment); err != nil {
			return err
		}
		if post.UserID == userID {
			return nil
		}
		return repositories.NewPostgresNotificationRepository(tx).CreateNotification(&models.Notification{
			RecipientID: post.UserID,
			Type:        models.NotificationComment,
			Message:     fmt.Sprintf("%s commented on your post \"%s\".", user.Username, post.Title),
			Link:        fmt.Sprintf("/post/%d", post.ID),
		})
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments, oldest first
func (s *PostService) ListComments(postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		return nil, asDomainErr(err)
	}
	return s.comments.GetCommentsByPostID(postID)
}

// DeleteComment deletes a comment; allowed for the comment author or the
// author of the post it belongs to
func (s *PostService) DeleteComment(userID, commentID uint) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return asDomainErr(err)
	}
	if comment.UserID != userID {
		post, err := s.posts.GetPostByID(comment.PostID)
		if err != nil {
			return asDomainErr(err)
		}
		if post.UserID != userID {
			return models.ErrForbidden
		}
	}
	return s.comments.DeleteComment(commentID)
}
