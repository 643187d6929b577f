package models

import "time"

// BlogPost represents an authored post
type BlogPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:140;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	ImageFile string    `json:"image_file" gorm:"size:20;not null;default:'default.jpg'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	User      User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Comments  []Comment  `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	Reactions []Reaction `json:"reactions,omitempty" gorm:"foreignKey:PostID"`
}

// CreatePostRequest defines the input for creating a new post
type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=140"`
	Text      string `json:"text" validate:"required,min=1"`
	ImageFile string `json:"image_file,omitempty" validate:"omitempty,max=20"`
}

// UpdatePostRequest defines the input for updating an existing post
type UpdatePostRequest struct {
	Title string `json:"title,omitempty" validate:"omitempty,min=1,max=140"`
	Text  string `json:"text,omitempty" validate:"omitempty,min=1"`
}
