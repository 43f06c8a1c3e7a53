package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
	"blog-api/internal/repository"
	"blog-api/internal/repository/sqlite"
)

func newRepositories(t *testing.T) (repository.UserRepository, repository.PostRepository) {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	posts := sqlite.NewPostRepository(db)
	ctx := context.Background()
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := posts.Init(ctx); err != nil {
		t.Fatalf("init posts: %v", err)
	}
	return users, posts
}

func newAuthService(users repository.UserRepository) AuthService {
	tokens := auth.NewTokenService(auth.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
	})
	return NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), tokens)
}

// steppingClock returns a clock that advances by one minute per call.
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func seedAuthor(t *testing.T, users repository.UserRepository) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user := &domain.User{
		ID:           "7d0c2f5e-4b8a-4c55-9a53-3f8b8c7a6e10",
		Email:        "author@test.com",
		PasswordHash: "x",
		Name:         "Author",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create author: %v", err)
	}
	return user
}
