package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/companyblog/backend/internal/models"
	"github.com/companyblog/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// AccountService handles registration, authentication, and profile updates
type AccountService struct {
	users     repositories.UserRepository
	validate  *validator.Validate
	jwtSecret []byte
}

// NewAccountService creates a new AccountService
func NewAccountService(db *gorm.DB, jwtSecret string) *AccountService {
	return &AccountService{
		users:     repositories.NewPostgresUserRepository(db),
		validate:  validator.New(),
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a new account. Duplicate email or username surface as a
// FieldError naming the offending field.
func (s *AccountService) Register(req models.RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByEmail(req.Email); err == nil {
		return nil, &models.FieldError{Field: "email", Message: "email is already registered"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if _, err := s.users.GetUserByUsername(req.Username); err == nil {
		return nil, &models.FieldError{Field: "username", Message: "username is already taken"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalid
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, models.ErrInvalid
	}
	return user, nil
}

// GenerateToken mints a signed JWT for an authenticated user
func (s *AccountService) GenerateToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken verifies a JWT and returns its claims
func (s *AccountService) ParseToken(tokenString string) (*models.JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, models.ErrInvalid
	}
	return claims, nil
}

// UpdateProfile updates account details, re-checking uniqueness when the
// email or username changes
func (s *AccountService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, asDomainErr(err)
	}

	if req.Email != "" && req.Email != user.Email {
		if other, err := s.users.GetUserByEmail(req.Email); err == nil && other.ID != userID {
			return nil, &models.FieldError{Field: "email", Message: "email is already registered"}
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checking email: %w", err)
		}
		user.Email = req.Email
	}
	if req.Username != "" && req.Username != user.Username {
		if other, err := s.users.GetUserByUsername(req.Username); err == nil && other.ID != userID {
			return nil, &models.FieldError{Field: "username", Message: "username is already taken"}
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checking username: %w", err)
		}
		user.Username = req.Username
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *AccountService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, asDomainErr(err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username
func (s *AccountService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, asDomainErr(err)
	}
	return user, nil
}
