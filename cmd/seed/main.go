// Command seed populates the database with fake users, posts, comments,
// reactions, and social-graph edges for local development.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/companyblog/backend/internal/models"
	"github.com/companyblog/backend/internal/services"
	"github.com/companyblog/backend/pkg/config"
)

func main() {
	userCount := flag.Int("users", 10, "number of users to create")
	postCount := flag.Int("posts", 30, "number of posts to create")
	flag.Parse()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := config.Migrate(db.Postgres); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	cfg := config.Load()
	accounts := services.NewAccountService(db.Postgres, cfg.JWTSecret)
	social := services.NewSocialService(db.Postgres)
	posts := services.NewPostService(db.Postgres)
	reactions := services.NewReactionService(db.Postgres)

	users := make([]*models.User, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		user, err := accounts.Register(models.RegisterRequest{
			Email:    gofakeit.Email(),
			Username: gofakeit.Username(),
			Password: gofakeit.Password(true, true, true, false, false, 12),
		})
		if err != nil {
			// Duplicate fake email/username, just skip it
			log.Printf("skipping user: %v", err)
			continue
		}
		users = append(users, user)
	}
	if len(users) < 2 {
		log.Fatal("not enough users created to seed relations")
	}
	log.Printf("created %d users", len(users))

	created := make([]*models.BlogPost, 0, *postCount)
	for i := 0; i < *postCount; i++ {
		author := users[rand.Intn(len(users))]
		post, err := posts.CreatePost(author.ID, models.CreatePostRequest{
			Title: gofakeit.Sentence(5),
			Text:  gofakeit.Paragraph(2, 4, 10, " "),
		})
		if err != nil {
			log.Fatalf("creating post: %v", err)
		}
		created = append(created, post)
	}
	log.Printf("created %d posts", len(created))

	for _, user := range users {
		for i := 0; i < 3; i++ {
			other := users[rand.Intn(len(users))]
			if other.ID == user.ID {
				continue
			}
			if err := social.Follow(user.ID, other.ID); err != nil {
				log.Fatalf("following: %v", err)
			}
		}
	}

	for _, post := range created {
		for i := 0; i < 2; i++ {
			user := users[rand.Intn(len(users))]
			reactionType := models.ReactionTypes[rand.Intn(len(models.ReactionTypes))]
			if err := reactions.Toggle(user.ID, post.ID, reactionType); err != nil {
				log.Fatalf("reacting: %v", err)
			}
		}
		user := users[rand.Intn(len(users))]
		if _, err := posts.AddComment(user.ID, post.ID, models.CreateCommentRequest{
			Body: gofakeit.Sentence(12),
		}); err != nil {
			log.Fatalf("commenting: %v", err)
		}
	}

	log.Println("Seed complete.")
}
