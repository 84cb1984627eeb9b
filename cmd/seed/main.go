package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/database"
	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/store"
)

// Seeds a handful of demo users with profiles and posts for local
// development. Existing users are left alone, so repeated runs are safe.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewMongoDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := store.NewMongoUserRepository(db)
	profiles := store.NewMongoProfileRepository(db, cfg.UniqueHandles)
	posts := store.NewMongoPostRepository(db)

	password := "testpassword123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()

	seedUsers := []struct {
		name   string
		email  string
		handle string
		status string
		skills []string
		post   string
	}{
		{
			name:   "John Doe",
			email:  "john.doe@example.com",
			handle: "johndoe",
			status: "Backend Developer",
			skills: []string{"Go", "MongoDB", "Redis"},
			post:   "Shipped my first service in Go today, the deploy was painless.",
		},
		{
			name:   "Jane Smith",
			email:  "jane.smith@example.com",
			handle: "janesmith",
			status: "Frontend Developer",
			skills: []string{"TypeScript", "Vue", "CSS"},
			post:   "Anyone have a good pattern for optimistic like toggles in the feed?",
		},
		{
			name:   "Bob Wilson",
			email:  "bob.wilson@example.com",
			handle: "bobwilson",
			status: "Student",
			skills: []string{"Python", "SQL"},
			post:   "Just finished my first week of the backend course, loving it so far.",
		},
	}

	log.Println("Creating demo users with profiles and posts...")

	for _, u := range seedUsers {
		if _, err := users.FindByEmail(ctx, u.email); err == nil {
			log.Printf("User %s already exists, skipping...", u.email)
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Fatalf("Failed to look up %s: %v", u.email, err)
		}

		userID := uuid.NewString()
		user := &models.User{
			ID:           userID,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hashedPassword),
			CreatedAt:    now,
		}
		if err := users.Insert(ctx, user); err != nil {
			log.Printf("Failed to create user %s: %v", u.email, err)
			continue
		}

		profile := &models.Profile{
			ID:        uuid.NewString(),
			UserID:    userID,
			Handle:    u.handle,
			Status:    u.status,
			Skills:    u.skills,
			Bio:       fmt.Sprintf("Demo account for %s", u.name),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := profiles.Insert(ctx, profile); err != nil {
			log.Printf("Failed to create profile for %s: %v", u.email, err)
			continue
		}

		post := &models.Post{
			ID:     uuid.NewString(),
			UserID: userID,
			Text:   u.post,
			Name:   u.name,
			Date:   now,
			Likes:  []models.Like{},
		}
		if err := posts.Insert(ctx, post); err != nil {
			log.Printf("Failed to create post for %s: %v", u.email, err)
			continue
		}

		log.Printf("Created user %s (%s) with profile @%s", u.name, u.email, u.handle)
	}

	log.Println("Demo credentials:")
	log.Println("Email: any of the seeded emails")
	log.Printf("Password: %s", password)
}
