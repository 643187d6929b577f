package services

import (
	"testing"

	"github.com/companyblog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionToggleRemoves(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReactionService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, bob, "first post")

	require.NoError(t, svc.Toggle(alice.ID, post.ID, models.ReactionLike))

	counts, err := svc.Counts(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.ReactionLike])

	// Same type again removes the reaction
	require.NoError(t, svc.Toggle(alice.ID, post.ID, models.ReactionLike))

	counts, err = svc.Counts(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[models.ReactionLike])

	var count int64
	require.NoError(t, db.Model(&models.Reaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestReactionToggleChangesType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReactionService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, bob, "first post")

	require.NoError(t, svc.Toggle(alice.ID, post.ID, models.ReactionLike))
	require.NoError(t, svc.Toggle(alice.ID, post.ID, models.ReactionLove))

	// One row with the new type, never a second row
	var reactions []models.Reaction
	require.NoError(t, db.Where("user_id = ? AND post_id = ?", alice.ID, post.ID).Find(&reactions).Error)
	require.Len(t, reactions, 1)
	assert.Equal(t, models.ReactionLove, reactions[0].Type)

	counts, err := svc.Counts(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[models.ReactionLike])
	assert.Equal(t, int64(1), counts[models.ReactionLove])
}

func TestReactionCountsAllTypes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReactionService(db)

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author, "popular post")

	reactors := []struct {
		name string
		kind models.ReactionType
	}{
		{"u1", models.ReactionLike},
		{"u2", models.ReactionLike},
		{"u3", models.ReactionHaha},
		{"u4", models.ReactionAngry},
	}
	for _, r := range reactors {
		user := createTestUser(t, db, r.name)
		require.NoError(t, svc.Toggle(user.ID, post.ID, r.kind))
	}

	counts, err := svc.Counts(post.ID)
	require.NoError(t, err)
	require.Len(t, counts, len(models.ReactionTypes))
	assert.Equal(t, int64(2), counts[models.ReactionLike])
	assert.Equal(t, int64(0), counts[models.ReactionLove])
	assert.Equal(t, int64(1), counts[models.ReactionHaha])
	assert.Equal(t, int64(0), counts[models.ReactionWow])
	assert.Equal(t, int64(0), counts[models.ReactionSad])
	assert.Equal(t, int64(1), counts[models.ReactionAngry])
}

func TestReactionInvalidType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReactionService(db)

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice, "post")

	err := svc.Toggle(alice.ID, post.ID, models.ReactionType("meh"))
	assert.ErrorIs(t, err, models.ErrInvalid)
}

func TestReactionMissingPost(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReactionService(db)

	alice := createTestUser(t, db, "alice")

	err := svc.Toggle(alice.ID, 999, models.ReactionLike)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Counts(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReactionNotifiesPostAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReactionService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, bob, "bob's post")

	require.NoError(t, svc.Toggle(alice.ID, post.ID, models.ReactionWow))

	var notif models.Notification
	require.NoError(t, db.Where("recipient_id = ?", bob.ID).First(&notif).Error)
	assert.Equal(t, models.NotificationReaction, notif.Type)
	assert.Contains(t, notif.Message, "alice reacted to your post")

	// Reacting to your own post stays silent
	require.NoError(t, svc.Toggle(bob.ID, post.ID, models.ReactionLove))

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("recipient_id = ?", bob.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
