package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account
type User struct {
	ID                       uint       `json:"id" gorm:"primaryKey"`
	Email                    string     `json:"email" gorm:"size:120;uniqueIndex"`
	Username                 string     `json:"username" gorm:"size:64;uniqueIndex"`
	PasswordHash             string     `json:"-" gorm:"size:128"`
	ProfileImage             string     `json:"profile_image" gorm:"size:64;not null;default:'default_profile.png'"`
	LastNotificationReadTime *time.Time `json:"-"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"-"`
}

// SetPassword hashes the plaintext password and stores the hash
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RegisterRequest defines the input for creating a new account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateProfileRequest defines the input for updating account details
type UpdateProfileRequest struct {
	Email        string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Username     string `json:"username,omitempty" validate:"omitempty,min=2,max=64"`
	ProfileImage string `json:"profile_image,omitempty" validate:"omitempty,max=64"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
