package services

import (
	"fmt"
	"testing"

	"github.com/companyblog/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.Comment{},
		&models.Reaction{},
		&models.Follow{},
		&models.Friendship{},
		&models.FriendRequest{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, title string) *models.BlogPost {
	t.Helper()

	post := &models.BlogPost{
		UserID: author.ID,
		Title:  title,
		Text:   "some text",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
