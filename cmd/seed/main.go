package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blog-api/internal/auth"
	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/domain"
	"blog-api/internal/repository"
	"blog-api/internal/service"
)

const (
	seedPassword = "12345678"
	seedCost     = 12
)

type account struct {
	email  string
	name   string
	role   domain.Role
	avatar string
}

var accounts = []account{
	{email: "admin@test.com", name: "Admin", role: domain.RoleAdmin},
	{email: "user@test.com", name: "User", role: domain.RoleUser, avatar: "https://i.pravatar.cc/150?u=user@test.com"},
}

func main() {
	postCount := flag.Int("posts", 50, "number of sample posts to create")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	store, err := database.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer store.Close()

	if err := run(ctx, store, *postCount, logger); err != nil {
		logger.Error(err)
		store.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, store *database.Store, postCount int, logger *logrus.Logger) error {
	hasher := auth.NewBcryptHasher(seedCost)

	var admin *domain.User
	for _, acc := range accounts {
		user, err := upsertAccount(ctx, store.Users, hasher, acc)
		if err != nil {
			return err
		}
		if acc.role == domain.RoleAdmin {
			admin = user
		}
		logger.WithFields(logrus.Fields{"email": user.Email, "role": user.Role}).Info("account ready")
	}

	if err := store.Posts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}

	gen := newGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	posts := service.NewPostService(store.Posts)
	for i := 0; i < postCount; i++ {
		if _, err := posts.Create(ctx, admin.ID, gen.post(i)); err != nil {
			return fmt.Errorf("create post %d: %w", i, err)
		}
	}
	logger.Infof("created %d posts", postCount)
	return nil
}

// upsertAccount creates the account unless its email is already registered.
func upsertAccount(ctx context.Context, users repository.UserRepository, hasher auth.PasswordHasher, acc account) (*domain.User, error) {
	existing, err := users.GetByEmail(ctx, acc.email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup %s: %w", acc.email, err)
	}

	hash, err := hasher.Hash(seedPassword)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        acc.email,
		PasswordHash: hash,
		Name:         acc.name,
		Role:         acc.role,
	}
	if acc.avatar != "" {
		user.Avatar = &acc.avatar
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create %s: %w", acc.email, err)
	}
	return user, nil
}
